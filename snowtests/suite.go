package snowtests

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/snowtest/snow-contract-tests/framework"
	"github.com/snowtest/snow-contract-tests/harness"
)

// Environment says where the compiled programs and the expected output files are.
type Environment struct {
	CasesDir    string
	ExpectedDir string
	// Timeout bounds each child process; zero means no limit.
	Timeout time.Duration
	Logger  framework.Logger
}

// Fixture returns the command that runs the named program from the cases directory.
func (e Environment) Fixture(name string, args ...string) harness.Command {
	return harness.NewCommand(filepath.Join(e.CasesDir, name), args...)
}

// Golden returns the path of an expected output file.
func (e Environment) Golden(name string) string {
	return filepath.Join(e.ExpectedDir, name)
}

func (e Environment) context() (context.Context, context.CancelFunc) {
	if e.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), e.Timeout)
}

func (e Environment) logger(t *framework.T) framework.Logger {
	if e.Logger == nil {
		return t.DebugLogger()
	}
	return framework.LoggerFunc(func(message string, args ...interface{}) {
		e.Logger.Printf(message, args...)
		t.Debug(message, args...)
	})
}

// run runs a command to completion; a command that cannot be run fails the test.
func (e Environment) run(t *framework.T, command harness.Command) harness.RunResult {
	ctx, cancel := e.context()
	defer cancel()
	result, err := harness.Run(ctx, command, e.logger(t))
	if err != nil {
		t.Errorf("could not run %s: %s", command, err)
		t.FailNow()
	}
	return result
}

// start starts a command whose output the test reads as it goes. The process is closed
// when the test ends.
func (e Environment) start(t *framework.T, command harness.Command) *harness.Process {
	ctx, cancel := e.context()
	p, err := harness.StartContext(ctx, command, e.logger(t))
	if err != nil {
		cancel()
		t.Errorf("could not start %s: %s", command, err)
		t.FailNow()
	}
	t.Defer(cancel)
	return p
}

// matchesGolden checks that the command's standard output is exactly the golden file.
func (e Environment) matchesGolden(t *framework.T, command harness.Command, golden string) bool {
	ctx, cancel := e.context()
	defer cancel()
	c, err := harness.CompareOutput(ctx, command, e.Golden(golden), e.logger(t))
	if err != nil {
		t.Errorf("could not compare output of %s: %s", command, err)
		return false
	}
	if !c.Match {
		t.Debug("%s: %s", command, c.Describe())
	}
	return t.Assert(c.Match, fmt.Sprintf("output of %s matches %s", command, golden))
}

// Register adds every group of the suite to root.
func Register(root *framework.Group, env Environment) {
	root.Describe("asserts", func(g *framework.Group) { DoAssertsTests(g, env) })
	root.Describe("commandline", func(g *framework.Group) { DoCommandLineTests(g, env) })
	root.Describe("cleanup", func(g *framework.Group) { DoCleanupTests(g, env) })
}

// Groups returns the names of the suite's top-level groups.
func Groups() []string {
	root := framework.NewSuite()
	Register(root, Environment{})
	return root.Groups()
}

// RunTestSuite runs the whole suite against the programs described by env.
func RunTestSuite(
	env Environment,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	root := framework.NewSuite()
	Register(root, env)
	return framework.Run(root, framework.RunOptions{Logger: testLogger, Filter: filter})
}
