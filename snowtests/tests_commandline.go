package snowtests

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/snowtest/snow-contract-tests/framework"
	"github.com/snowtest/snow-contract-tests/harness"
)

func DoCommandLineTests(g *framework.Group, env Environment) {
	fixture := func(args ...string) harness.Command {
		return env.Fixture("commandline", args...)
	}

	g.It("prints usage with -h and --help", func(t *framework.T) {
		env.matchesGolden(t, fixture("--help"), "commandline-help")
		env.matchesGolden(t, fixture("-h"), "commandline-help")
	})

	g.It("prints version with -v and --version", func(t *framework.T) {
		env.matchesGolden(t, fixture("--version"), "commandline-version")
		env.matchesGolden(t, fixture("-v"), "commandline-version")
	})

	g.It("prints only failures and a total with --quiet", func(t *framework.T) {
		env.matchesGolden(t, fixture("--quiet"), "commandline-quiet")
		env.matchesGolden(t, fixture("-q"), "commandline-quiet")
	})

	g.It("prints times", func(t *framework.T) {
		env.matchesGolden(t, fixture(), "commandline-timer")
		env.matchesGolden(t, fixture("-t"), "commandline-timer")
		env.matchesGolden(t, fixture("--timer"), "commandline-timer")
	})

	g.It("prints no times with --no-timer", func(t *framework.T) {
		env.matchesGolden(t, fixture("--no-timer"), "commandline-no-timer")
	})

	g.It("uses the last of --timer and --no-timer", func(t *framework.T) {
		env.matchesGolden(t, fixture("--timer", "--no-timer"), "commandline-no-timer")
		env.matchesGolden(t, fixture("--no-timer", "-t"), "commandline-timer")
	})

	g.It("logs to the file specified with --log", func(t *framework.T) {
		dir, err := os.MkdirTemp("", "snow-log")
		if err != nil {
			t.Errorf("cannot create temporary directory: %s", err)
			t.FailNow()
		}
		t.Defer(func() { _ = os.RemoveAll(dir) })
		logPath := filepath.Join(dir, "tmpfile")

		if !env.matchesGolden(t, fixture("--log", logPath), "commandline-log-stdout") {
			t.FailNow()
		}

		c, err := harness.CompareFiles(logPath, env.Golden("commandline-log-output"))
		if err != nil {
			t.Errorf("cannot read log file: %s", err)
			t.FailNow()
		}
		if !c.Match {
			t.Debug("log file: %s", c.Describe())
		}
		t.Assert(c.Match, "log file matches commandline-log-output")
	})

	g.It("exits with failure status when an assertion fails", func(t *framework.T) {
		result := env.run(t, fixture())
		t.AssertEqInt(result.ExitCode, framework.ExitFailure)
	})

	g.It("prints a subset of the normal output with --quiet", func(t *framework.T) {
		normal := env.run(t, fixture()).Stdout
		quiet := env.run(t, fixture("--quiet")).Stdout
		for _, line := range missingLines(normal, quiet) {
			t.Debug("not in normal output: %q", line)
		}
		t.AssertEqInt(len(missingLines(normal, quiet)), 0)
	})

	g.It("rejects unknown options", func(t *framework.T) {
		expectUsageError(t, env.run(t, fixture("--bogus")))
	})

	g.It("rejects --log without a file name", func(t *framework.T) {
		expectUsageError(t, env.run(t, fixture("--log")))
	})

	g.It("rejects unknown group names", func(t *framework.T) {
		expectUsageError(t, env.run(t, fixture("no-such-group")))
	})
}

func expectUsageError(t *framework.T, result harness.RunResult) {
	t.AssertEqInt(result.ExitCode, framework.ExitUsageError)
	t.AssertEqInt(len(result.Stdout), 0)
	t.Assert(strings.Contains(result.Stderr, "Usage: "), "usage is printed to stderr")
}

// missingLines returns the lines of subset that are not whole lines of output. Indentation
// counts.
func missingLines(output, subset []byte) []string {
	have := map[string]bool{}
	for _, line := range strings.Split(string(output), "\n") {
		have[line] = true
	}
	var missing []string
	for _, line := range strings.Split(strings.TrimRight(string(subset), "\n"), "\n") {
		if !have[line] {
			missing = append(missing, line)
		}
	}
	return missing
}
