package snowtests

import (
	"github.com/snowtest/snow-contract-tests/framework"
	"github.com/snowtest/snow-contract-tests/harness"
)

func DoCleanupTests(g *framework.Group, env Environment) {
	g.It("runs deferred actions in reverse order", func(t *framework.T) {
		command := env.Fixture("cleanup", "--no-timer", "lifo")
		env.matchesGolden(t, command, "cleanup-lifo")
		t.AssertEqInt(env.run(t, command).ExitCode, framework.ExitSuccess)
	})

	g.It("runs deferred actions when a test fails or stops early", func(t *framework.T) {
		p := env.start(t, env.Fixture("cleanup", "after-failure"))
		t.Defer(func() { _ = p.Close() })

		expectOutcomes(t, harness.NewOutcomeReader(p), fail, pass, fail, pass)

		if err := p.Close(); err != nil {
			t.Errorf("error waiting for %s: %s", p.Command(), err)
		}
		t.AssertEqInt(p.ExitCode(), framework.ExitFailure)
	})
}
