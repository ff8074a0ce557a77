package snowtests

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snowtest/snow-contract-tests/framework"
)

var fixtureNames = []string{"asserts", "commandline", "cleanup"}

// buildFixtures compiles the programs under cases into a temporary directory.
func buildFixtures(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("builds the fixture programs")
	}
	dir := t.TempDir()
	for _, name := range fixtureNames {
		out := filepath.Join(dir, name)
		if runtime.GOOS == "windows" {
			out += ".exe"
		}
		cmd := exec.Command("go", "build", "-o", out, "./cases/"+name)
		cmd.Dir = ".."
		output, err := cmd.CombinedOutput()
		require.NoError(t, err, "building %s: %s", name, output)
	}
	return dir
}

func testEnvironment(t *testing.T) Environment {
	return Environment{
		CasesDir:    buildFixtures(t),
		ExpectedDir: filepath.Join("..", "expected"),
		Timeout:     time.Minute,
	}
}

func TestSuitePassesAgainstFixtures(t *testing.T) {
	env := testEnvironment(t)
	var out bytes.Buffer
	results := RunTestSuite(env, nil, framework.NewConsoleTestLogger(&out, framework.ConsoleOptions{}))

	for _, f := range results.Failures {
		t.Errorf("failed: %s", f.TestID)
	}
	if t.Failed() {
		t.Log(out.String())
	}
	assert.True(t, results.OK())
	assert.Equal(t, 7+12+2, results.Stats.Tests)
	assert.Contains(t, out.String(), "Total: Passed 21/21 tests")
}

func TestSuiteDetectsChangedExpectedOutput(t *testing.T) {
	env := testEnvironment(t)
	expected := t.TempDir()
	entries, err := os.ReadDir(env.ExpectedDir)
	require.NoError(t, err)
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(env.ExpectedDir, e.Name()))
		require.NoError(t, err)
		if e.Name() == "commandline-version" {
			data = []byte(strings.Replace(string(data), "Snow", "Sleet", 1))
		}
		require.NoError(t, os.WriteFile(filepath.Join(expected, e.Name()), data, 0o644))
	}
	env.ExpectedDir = expected

	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set("^commandline/prints version"))
	results := RunTestSuite(env, filters.AsFilter, nil)

	assert.False(t, results.OK())
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "commandline/prints version with -v and --version", results.Failures[0].TestID.String())
}

func TestSuiteFailsWhenProgramIsMissing(t *testing.T) {
	env := Environment{CasesDir: t.TempDir(), ExpectedDir: filepath.Join("..", "expected")}
	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set("^cleanup/"))
	results := RunTestSuite(env, filters.AsFilter, nil)
	assert.False(t, results.OK())
	assert.Len(t, results.Failures, 2)
}

func TestMissingLinesKeepsIndentation(t *testing.T) {
	normal := []byte("Testing g:\n  \u2715 int: expected 1 == 2\n  Failed: g/t\nTotal: Passed 0/1 tests.\n")

	assert.Empty(t, missingLines(normal, []byte("  \u2715 int: expected 1 == 2\n  Failed: g/t\n")))
	assert.Equal(t, []string{"\u2715 int: expected 1 == 2"},
		missingLines(normal, []byte("\u2715 int: expected 1 == 2\n  Failed: g/t\n")))
	assert.Equal(t, []string{"    Failed: g/t"}, missingLines(normal, []byte("    Failed: g/t")))
}
