package snowtests

import (
	"fmt"

	"github.com/snowtest/snow-contract-tests/framework"
	"github.com/snowtest/snow-contract-tests/harness"
)

const (
	fail = harness.Failure
	pass = harness.Success
)

// DoAssertsTests reads the outcomes of the asserts program from one shared stream, in order:
// each test consumes the outcomes of the matching test in the program.
func DoAssertsTests(g *framework.Group, env Environment) {
	var outcomes *harness.OutcomeReader

	g.Setup(func(t *framework.T) {
		p := env.start(t, env.Fixture("asserts"))
		t.Defer(func() {
			if err := p.Close(); err != nil {
				t.Errorf("error waiting for %s: %s", p.Command(), err)
				return
			}
			t.AssertEqInt(p.ExitCode(), framework.ExitFailure)
		})
		outcomes = harness.NewOutcomeReader(p)
	})

	g.Test("asserteq_int, assertneq_int", func(t *framework.T) {
		expectOutcomes(t, outcomes, fail, pass, pass, fail)
	})

	g.Test("asserteq_dbl, assertneq_dbl", func(t *framework.T) {
		expectOutcomes(t, outcomes, fail, pass, pass, fail)
	})

	g.Test("asserteq_ptr, assertneq_ptr", func(t *framework.T) {
		expectOutcomes(t, outcomes, fail, pass, pass, fail, pass)
	})

	g.Test("asserteq_str, assertneq_str", func(t *framework.T) {
		expectOutcomes(t, outcomes, fail, pass, pass, fail)
	})

	g.Test("asserteq_buf, assertneq_buf", func(t *framework.T) {
		expectOutcomes(t, outcomes, fail, pass, pass, fail)
	})

	g.Test("asserteq", func(t *framework.T) {
		expectOutcomes(t, outcomes, pass, fail, pass, fail, pass, fail, pass, fail)
	})

	g.Test("assertneq", func(t *framework.T) {
		expectOutcomes(t, outcomes, fail, pass, fail, pass, fail, pass, fail, pass)
	})
}

func expectOutcomes(t *framework.T, r *harness.OutcomeReader, expected ...harness.Result) {
	actual, err := r.Read(len(expected))
	if err != nil {
		t.Errorf("error reading outcomes: %s", err)
	}
	t.Require().AssertEqInt(len(actual), len(expected))
	for i := range expected {
		t.Assert(actual[i] == expected[i], fmt.Sprintf("outcome %d is %s", i+1, expected[i]))
	}
}
