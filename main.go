package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/snowtest/snow-contract-tests/framework"
	"github.com/snowtest/snow-contract-tests/snowtests"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
	}
	return exitCode(err)
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	params := &commandParams{}

	cmd := &cobra.Command{
		Use:   "snow-contract-tests [group...]",
		Short: "Contract tests for snow test programs",
		Long: `Runs the compiled test programs in the cases directory and checks their
output, exit status and log files against the files in the expected directory.
Naming one or more groups (asserts, commandline, cleanup) runs only those groups.

Exit codes:
  0 - all tests passed
  1 - one or more tests failed
  2 - invalid command line or configuration
  3 - the cases directory or the log file could not be used`,
		Args:          checkGroups,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := loadFileConfig(params.configPath)
			if err != nil {
				return newExitError(framework.ExitUsageError, "cannot load configuration", err)
			}
			if err := params.applyFileConfig(fc, cmd.Flags()); err != nil {
				return newExitError(framework.ExitUsageError, "invalid configuration", err)
			}
			return runSuite(params, args, stdout)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	params.addFlags(cmd.Flags())
	return cmd
}

func checkGroups(cmd *cobra.Command, args []string) error {
	known := map[string]bool{}
	for _, g := range snowtests.Groups() {
		known[g] = true
	}
	for _, a := range args {
		if !known[a] {
			return fmt.Errorf("unknown group %q", a)
		}
	}
	return nil
}

func runSuite(params *commandParams, groups []string, stdout io.Writer) error {
	logger, err := newLogger(params.debug)
	if err != nil {
		return newExitError(framework.ExitResourceError, "cannot create logger", err)
	}
	defer func() { _ = logger.Sync() }()

	if info, err := os.Stat(params.casesDir); err != nil || !info.IsDir() {
		if err == nil {
			err = fmt.Errorf("not a directory")
		}
		return newExitError(framework.ExitResourceError, "cases directory "+params.casesDir, err)
	}
	logger.Sugar().Debugw("starting test suite",
		"cases", params.casesDir, "expected", params.expectedDir, "timeout", params.timeout)

	out := stdout
	if params.logPath != "" {
		f, err := os.Create(params.logPath)
		if err != nil {
			return newExitError(framework.ExitResourceError, "cannot open log file", err)
		}
		defer f.Close()
		out = io.MultiWriter(stdout, f)
	}

	params.filters.Describe(out)

	testLogger := framework.NewConsoleTestLogger(out, framework.ConsoleOptions{
		Quiet: params.quiet,
		Timer: !params.noTimer,
	})
	env := snowtests.Environment{
		CasesDir:    params.casesDir,
		ExpectedDir: params.expectedDir,
		Timeout:     params.timeout,
		Logger:      debugLogger(logger),
	}
	filter := framework.AllOf(framework.TopLevelGroups(groups), params.filters.AsFilter)
	results := snowtests.RunTestSuite(env, filter, testLogger)

	if err := testLogger.Err(); err != nil {
		return newExitError(framework.ExitResourceError, "cannot write report", err)
	}
	if !results.OK() {
		for _, f := range results.Failures {
			logger.Sugar().Debugw("test failed", "test", f.TestID.String(), "failures", f.Failures)
		}
		return newExitError(framework.ExitFailure, fmt.Sprintf("%d test(s) failed", len(results.Failures)), nil)
	}
	return nil
}
