package framework

import "errors"

var errSetupFailed = errors.New("group setup failed")

type environment struct {
	stats      *Stats
	results    *Results
	testLogger TestLogger
	filter     Filter
	clock      Clock
}

// RunOptions control a call to Run. Every field is optional.
type RunOptions struct {
	// Logger receives the reporting events; the default discards them.
	Logger TestLogger
	// Clock is used to time the run; the default is the system clock.
	Clock Clock
	// Filter selects leaf tests by ID. Groups that contain no selected test are skipped
	// entirely, setup included.
	Filter Filter
}

// Run walks the tree depth-first in registration order, running every selected test.
func Run(root *Group, opts RunOptions) Results {
	env := &environment{
		stats:      &Stats{},
		results:    &Results{},
		testLogger: opts.Logger,
		filter:     opts.Filter,
		clock:      opts.Clock,
	}
	if env.testLogger == nil {
		env.testLogger = nullTestLogger{}
	}
	if env.clock == nil {
		env.clock = realClock{}
	}

	start := env.clock.Now()
	if root != nil {
		for _, child := range root.children {
			env.runNode(child, TestID{})
		}
	}
	env.stats.Elapsed = env.clock.Now().Sub(start)

	env.results.Stats = *env.stats
	env.testLogger.RunFinished(*env.results)
	return *env.results
}

func (env *environment) runNode(n node, parent TestID) {
	id := parent.Child(n.nodeName())
	switch n := n.(type) {
	case *Group:
		if env.selects(n, id) {
			env.runGroup(n, id)
		}
	case *testCase:
		if env.filter == nil || env.filter(id) {
			env.runTest(n, id)
		}
	}
}

func (env *environment) runGroup(g *Group, id TestID) {
	start := env.clock.Now()
	snapshot := *env.stats
	env.testLogger.GroupStarted(id)

	var setup *T
	if g.setup != nil {
		setup = newT(env, id.Child("setup"))
		setup.run(g.setup)
	}
	if setup == nil || !setup.Failed() {
		for _, child := range g.children {
			env.runNode(child, id)
		}
	}
	if setup != nil {
		setup.unwind()
		if setup.Failed() {
			env.results.Failures = append(env.results.Failures, setup.result)
			env.testLogger.TestFinished(setup.id, setup.result, setup.debugLogger.Output())
			env.skipChildren(g, id, TestFailure{ID: setup.id, Err: errSetupFailed})
		}
	}

	stats := env.stats.since(snapshot)
	stats.Elapsed = env.clock.Now().Sub(start)
	env.testLogger.GroupFinished(id, stats)
}

func (env *environment) runTest(c *testCase, id TestID) {
	start := env.clock.Now()
	t := newT(env, id)
	t.run(c.body)
	t.unwind()
	t.result.Elapsed = env.clock.Now().Sub(start)

	env.stats.Tests++
	env.results.Tests = append(env.results.Tests, t.result)
	if t.Failed() {
		env.stats.FailedTests++
		env.results.Failures = append(env.results.Failures, t.result)
	}
	env.testLogger.TestFinished(id, t.result, t.debugLogger.Output())
}

// skipChildren records every selected test under g as failed without running it.
func (env *environment) skipChildren(g *Group, id TestID, cause TestFailure) {
	for _, child := range g.children {
		childID := id.Child(child.nodeName())
		switch c := child.(type) {
		case *Group:
			if env.selects(c, childID) {
				snapshot := *env.stats
				env.testLogger.GroupStarted(childID)
				env.skipChildren(c, childID, cause)
				env.testLogger.GroupFinished(childID, env.stats.since(snapshot))
			}
		case *testCase:
			if env.filter != nil && !env.filter(childID) {
				continue
			}
			result := TestResult{TestID: childID, Errors: []error{cause}}
			env.stats.Tests++
			env.stats.FailedTests++
			env.results.Tests = append(env.results.Tests, result)
			env.results.Failures = append(env.results.Failures, result)
			env.testLogger.TestFinished(childID, result, CapturedOutput{{Message: "not run: " + cause.Error()}})
		}
	}
}

// selects reports whether the group contains at least one test that passes the filter.
func (env *environment) selects(g *Group, id TestID) bool {
	if env.filter == nil {
		return true
	}
	for _, child := range g.children {
		childID := id.Child(child.nodeName())
		switch c := child.(type) {
		case *Group:
			if env.selects(c, childID) {
				return true
			}
		case *testCase:
			if env.filter(childID) {
				return true
			}
		}
	}
	return false
}
