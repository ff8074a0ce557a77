package framework

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree(trail *[]string) *Group {
	root := NewSuite()
	root.Describe("first", func(g *Group) {
		g.Test("a", func(t *T) {
			*trail = append(*trail, "first/a")
			t.AssertEqInt(1, 1)
		})
		g.Describe("inner", func(g *Group) {
			g.It("b", func(t *T) {
				*trail = append(*trail, "first/inner/b")
				t.AssertEqInt(1, 2)
				t.AssertEqInt(2, 2)
			})
		})
	})
	root.Describe("second", func(g *Group) {
		g.Test("c", func(t *T) {
			*trail = append(*trail, "second/c")
		})
	})
	return root
}

func TestRegistrationDoesNotRunBodies(t *testing.T) {
	var trail []string
	root := sampleTree(&trail)
	assert.Empty(t, trail)
	assert.Equal(t, []string{"first", "second"}, root.Groups())
}

func TestRunWalksDepthFirstInRegistrationOrder(t *testing.T) {
	var trail []string
	logger := &recordingTestLogger{}
	results := Run(sampleTree(&trail), RunOptions{Logger: logger})

	assert.Equal(t, []string{"first/a", "first/inner/b", "second/c"}, trail)
	assert.Equal(t, []string{
		"start first",
		"✓ first/a int: 1 == 1",
		"passed first/a",
		"start first/inner",
		"✕ first/inner/b int: expected 1 == 2",
		"✓ first/inner/b int: 2 == 2",
		"failed first/inner/b",
		"end first/inner 0/1",
		"end first 1/2",
		"start second",
		"passed second/c",
		"end second 1/1",
		"total 2/3 1/3",
	}, logger.events)

	assert.False(t, results.OK())
	assert.Equal(t, 3, results.Stats.Tests)
	assert.Equal(t, 1, results.FailedTests)
	assert.Len(t, results.Tests, 3)
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "first/inner/b", results.Failures[0].TestID.String())
}

func TestRunTimesWithClock(t *testing.T) {
	var trail []string
	root := sampleTree(&trail)
	results := Run(root, RunOptions{Clock: NewStepClock(time.Unix(0, 0), time.Millisecond)})

	// three groups and three tests read the clock twice each, and so does the run
	assert.Equal(t, 13*time.Millisecond, results.Elapsed)
	assert.Equal(t, time.Millisecond, results.Tests[0].Elapsed)
}

func TestFilterSkipsTestsAndEmptyGroups(t *testing.T) {
	var trail []string
	logger := &recordingTestLogger{}
	Run(sampleTree(&trail), RunOptions{
		Logger: logger,
		Filter: func(id TestID) bool { return id.Name() != "b" },
	})
	assert.Equal(t, []string{"first/a", "second/c"}, trail)
	assert.NotContains(t, logger.events, "start first/inner")
}

func TestTopLevelGroupsFilter(t *testing.T) {
	var trail []string
	Run(sampleTree(&trail), RunOptions{Filter: TopLevelGroups([]string{"second"})})
	assert.Equal(t, []string{"second/c"}, trail)
}

func TestFailedSetupSkipsChildren(t *testing.T) {
	ran := false
	root := NewSuite()
	root.Describe("g", func(g *Group) {
		g.Setup(func(t *T) { t.AssertEqStr("ready", "not ready") })
		g.Test("t", func(t *T) { ran = true })
	})
	logger := &recordingTestLogger{}
	results := Run(root, RunOptions{Logger: logger})

	assert.False(t, ran)
	assert.False(t, results.OK())
	assert.Contains(t, logger.events, "failed g/setup")
	assert.Contains(t, logger.events, "failed g/t")
	assert.Contains(t, logger.events, "end g 0/1")
	assert.Equal(t, 1, results.Stats.Tests)
	assert.Equal(t, 1, results.FailedTests)
	require.Len(t, results.Failures, 2)
	assert.Equal(t, "g/setup", results.Failures[0].TestID.String())
	assert.Equal(t, "g/t", results.Failures[1].TestID.String())
	assert.Equal(t, []error{TestFailure{ID: TestID{Path: []string{"g", "setup"}}, Err: errSetupFailed}},
		results.Failures[1].Errors)
}

func TestFailedSetupReportsSkippedTests(t *testing.T) {
	root := NewSuite()
	root.Describe("g", func(g *Group) {
		g.Setup(func(t *T) { t.Require().Assert(false, "fixture started") })
		g.Test("a", func(t *T) {})
		g.Describe("inner", func(g *Group) {
			g.Test("b", func(t *T) {})
			g.Test("c", func(t *T) {})
		})
	})
	var filters RegexFilters
	require.NoError(t, filters.MustNotMatch.Set("/c$"))
	var buf bytes.Buffer
	Run(root, RunOptions{Logger: NewConsoleTestLogger(&buf, ConsoleOptions{}), Filter: filters.AsFilter})

	assert.Equal(t, `Testing g:
  ✕ fixture started
  Failed: g/setup
  Failed: g/a
    DEBUG not run: [g/setup]: group setup failed
  Testing inner:
    Failed: g/inner/b
      DEBUG not run: [g/setup]: group setup failed
  inner: Passed 0/1 tests.
g: Passed 0/2 tests.

Total: Passed 0/2 tests, 1/1 assertions failed.
`, buf.String())
}

func TestEmptyRun(t *testing.T) {
	results := Run(NewSuite(), RunOptions{})
	assert.True(t, results.OK())
	assert.Equal(t, 0, results.Stats.Tests)

	results = Run(nil, RunOptions{})
	assert.True(t, results.OK())
}

func TestRegexFilters(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("^first/"))
	require.NoError(t, filters.MustNotMatch.Set("inner"))
	assert.True(t, filters.AsFilter(TestID{Path: []string{"first", "a"}}))
	assert.False(t, filters.AsFilter(TestID{Path: []string{"first", "inner", "b"}}))
	assert.False(t, filters.AsFilter(TestID{Path: []string{"second", "c"}}))

	assert.Error(t, filters.MustMatch.Set("("))
	assert.Equal(t, `"^first/"`, filters.MustMatch.String())
}
