package framework

import (
	"fmt"
	"strings"
	"time"
)

// Stats are the counters accumulated while walking the test tree. A single Stats value is
// passed by pointer through the whole walk; groups compute their own totals by comparing a
// snapshot taken when they start.
type Stats struct {
	Assertions  int
	Failures    int
	Tests       int
	FailedTests int
	Elapsed     time.Duration
}

// Passed returns the number of leaf tests that did not fail.
func (s Stats) Passed() int {
	return s.Tests - s.FailedTests
}

func (s Stats) since(start Stats) Stats {
	return Stats{
		Assertions:  s.Assertions - start.Assertions,
		Failures:    s.Failures - start.Failures,
		Tests:       s.Tests - start.Tests,
		FailedTests: s.FailedTests - start.FailedTests,
	}
}

// Results is the outcome of a whole run.
type Results struct {
	Stats
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID     TestID
	Errors     []error
	Assertions int
	Failures   int
	Elapsed    time.Duration
}

// Failed is true if an assertion failed, or if the test could not run at all.
func (r TestResult) Failed() bool {
	return r.Failures > 0 || len(r.Errors) > 0
}

// OK is true if no assertion failed anywhere in the run.
func (r Results) OK() bool {
	return r.Stats.Failures == 0
}

// TestID identifies a test or group by its path of names from the root.
type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// Name returns the last element of the path.
func (t TestID) Name() string {
	if len(t.Path) == 0 {
		return ""
	}
	return t.Path[len(t.Path)-1]
}

// Depth is the nesting level used for indentation; top-level groups and tests have depth 0.
func (t TestID) Depth() int {
	if len(t.Path) == 0 {
		return 0
	}
	return len(t.Path) - 1
}

func (t TestID) Child(name string) TestID {
	path := make([]string, 0, len(t.Path)+1)
	return TestID{Path: append(append(path, t.Path...), name)}
}

// TestFailure is the cause recorded for a test that failed without running.
type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}
