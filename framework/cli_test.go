package framework

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	helpers "github.com/launchdarkly/go-test-helpers/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, root *Group, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	program := NewProgram(root, WithClock(NewStepClock(time.Unix(0, 0), time.Millisecond)))
	code := program.Execute(append([]string{"/some/dir/report"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func passingTree() *Group {
	root := NewSuite()
	root.Describe("ok", func(g *Group) {
		g.Test("t", func(t *T) { t.AssertEqInt(1, 1) })
	})
	root.Describe("other", func(g *Group) {
		g.Test("u", func(t *T) { t.AssertEqStr("a", "a") })
	})
	return root
}

func TestParseArgsDefaults(t *testing.T) {
	config, err := ParseArgs(nil)
	require.NoError(t, err)
	assert.True(t, config.Timer)
	assert.False(t, config.Quiet)
	assert.Equal(t, ColorAuto, config.Color)
	assert.False(t, config.LogPath.IsDefined())
}

func TestParseArgsLastTimerFlagWins(t *testing.T) {
	config, err := ParseArgs([]string{"--no-timer", "-t"})
	require.NoError(t, err)
	assert.True(t, config.Timer)

	config, err = ParseArgs([]string{"--timer", "--no-timer"})
	require.NoError(t, err)
	assert.False(t, config.Timer)
}

func TestParseArgsColor(t *testing.T) {
	config, err := ParseArgs([]string{"--no-color", "-c"})
	require.NoError(t, err)
	assert.Equal(t, ColorAlways, config.Color)

	config, err = ParseArgs([]string{"--no-color"})
	require.NoError(t, err)
	assert.Equal(t, ColorNever, config.Color)
}

func TestParseArgsLogAndGroups(t *testing.T) {
	config, err := ParseArgs([]string{"-q", "--log", "out.txt", "first", "second"})
	require.NoError(t, err)
	assert.True(t, config.Quiet)
	assert.Equal(t, "out.txt", config.LogPath.StringValue())
	assert.Equal(t, []string{"first", "second"}, config.Groups)
}

func TestParseArgsErrors(t *testing.T) {
	for _, args := range [][]string{{"--bogus"}, {"--log"}, {"--log="}, {"-x"}} {
		_, err := ParseArgs(args)
		require.Error(t, err, "%v", args)
		assert.IsType(t, UsageError{}, err)
	}
}

func TestExecuteExitStatus(t *testing.T) {
	code, _, _ := execute(t, passingTree())
	assert.Equal(t, ExitSuccess, code)

	code, _, _ = execute(t, reportTree())
	assert.Equal(t, ExitFailure, code)
}

func TestExecuteHelpUsesProgramBaseName(t *testing.T) {
	for _, flag := range []string{"-h", "--help"} {
		code, stdout, stderr := execute(t, reportTree(), flag)
		assert.Equal(t, ExitSuccess, code)
		assert.True(t, strings.HasPrefix(stdout, "Usage: report [options] [group...]\n"), stdout)
		assert.Empty(t, stderr)
	}
}

func TestExecuteVersion(t *testing.T) {
	for _, flag := range []string{"-v", "--version"} {
		code, stdout, _ := execute(t, reportTree(), flag)
		assert.Equal(t, ExitSuccess, code)
		assert.Equal(t, "Snow version "+Version+"\n", stdout)
	}

	var stdout bytes.Buffer
	NewProgram(nil, WithVersion("9.9.9")).Execute([]string{"x", "-v"}, &stdout, &bytes.Buffer{})
	assert.Equal(t, "Snow version 9.9.9\n", stdout.String())
}

func TestExecuteUsageErrorPrintsNothingToStdout(t *testing.T) {
	for _, args := range [][]string{{"--bogus"}, {"--log"}, {"nosuchgroup"}} {
		code, stdout, stderr := execute(t, reportTree(), args...)
		assert.Equal(t, ExitUsageError, code, "%v", args)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "Usage: report")
	}
}

func TestExecuteRunsNamedGroupsOnly(t *testing.T) {
	code, stdout, _ := execute(t, passingTree(), "--no-timer", "other")
	assert.Equal(t, ExitSuccess, code)
	assert.NotContains(t, stdout, "Testing ok:")
	assert.Contains(t, stdout, "Testing other:")
	assert.Contains(t, stdout, "Total: Passed 1/1 tests, 0/1 assertions failed.\n")
}

func TestExecuteList(t *testing.T) {
	code, stdout, _ := execute(t, reportTree(), "--list")
	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "report\n  passing test\n  failing test\n  nested\n    inner test\n", stdout)
}

func TestExecuteLogDuplicatesStdout(t *testing.T) {
	helpers.WithTempFile(func(path string) {
		code, stdout, _ := execute(t, reportTree(), "--log", path)
		assert.Equal(t, ExitFailure, code)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, stdout, string(data))
		assert.NotEmpty(t, stdout)
	})
}

func TestExecuteLogFileCannotBeCreated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.log")
	code, stdout, stderr := execute(t, reportTree(), "--log", path)
	assert.Equal(t, ExitResourceError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "cannot open log file")
	assert.False(t, helpers.FilePathExists(path))
}

func TestExecuteUsageErrorDoesNotCreateLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	code, _, _ := execute(t, reportTree(), "--log", path, "nosuchgroup")
	assert.Equal(t, ExitUsageError, code)
	assert.False(t, helpers.FilePathExists(path))
}

func TestExecuteMatchesGoldenReport(t *testing.T) {
	_, stdout, _ := execute(t, reportTree(), "--no-color")
	newGoldie(t).Assert(t, "report-timer", []byte(stdout))
}
