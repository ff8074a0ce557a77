package framework

import (
	"fmt"
	"time"
)

// recordingTestLogger keeps every event as a short string, and every outcome as it was
// reported.
type recordingTestLogger struct {
	events   []string
	outcomes []Outcome
}

func (r *recordingTestLogger) GroupStarted(id TestID) {
	r.events = append(r.events, "start "+id.String())
}

func (r *recordingTestLogger) AssertionResult(id TestID, outcome Outcome) {
	r.events = append(r.events, fmt.Sprintf("%s %s %s", outcome.Marker(), id, outcome.Message))
	r.outcomes = append(r.outcomes, outcome)
}

func (r *recordingTestLogger) TestFinished(id TestID, result TestResult, debugOutput CapturedOutput) {
	status := "passed"
	if result.Failed() {
		status = "failed"
	}
	r.events = append(r.events, fmt.Sprintf("%s %s", status, id))
}

func (r *recordingTestLogger) GroupFinished(id TestID, stats Stats) {
	r.events = append(r.events, fmt.Sprintf("end %s %d/%d", id, stats.Passed(), stats.Tests))
}

func (r *recordingTestLogger) RunFinished(results Results) {
	r.events = append(r.events, fmt.Sprintf("total %d/%d %d/%d",
		results.Passed(), results.Stats.Tests, results.Stats.Failures, results.Assertions))
}

func (r *recordingTestLogger) passes() []bool {
	var ret []bool
	for _, o := range r.outcomes {
		ret = append(ret, o.Passed)
	}
	return ret
}

func (r *recordingTestLogger) messages() []string {
	var ret []string
	for _, o := range r.outcomes {
		ret = append(ret, o.Message)
	}
	return ret
}

// runOne runs a single test body in a group named "g" and returns what was reported.
func runOne(body func(*T)) (*recordingTestLogger, Results) {
	root := NewSuite()
	root.Describe("g", func(g *Group) {
		g.Test("t", body)
	})
	logger := &recordingTestLogger{}
	results := Run(root, RunOptions{Logger: logger, Clock: NewStepClock(time.Unix(0, 0), time.Millisecond)})
	return logger, results
}
