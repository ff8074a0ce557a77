package framework

import (
	"fmt"
	"runtime/debug"
)

// T is the scope of a single test, or of a group's setup. It is similar to *testing.T and
// implements require.TestingT, so assertions from the testify packages can be passed a *T.
//
// The typed assertion methods come from the embedded Asserter and keep going after a
// failure; use Require for checks that stop the test.
type T struct {
	Asserter
	env         *environment
	id          TestID
	result      TestResult
	cleanups    cleanupStack
	debugLogger CapturingLogger
}

func newT(env *environment, id TestID) *T {
	t := &T{env: env, id: id}
	t.Asserter = Asserter{t: t}
	t.result.TestID = id
	return t
}

// run calls the action, recovering from FailNow and from any other panic. It does not run
// the deferred actions; that is up to the caller, since a group setup's cleanups have to
// wait for the group's children.
func (t *T) run(action func(*T)) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*T); !ok {
				t.debugLogger.Printf("%s", debug.Stack())
				t.report(failed(fmt.Sprintf("unexpected panic in test: %+v", r)))
			}
		}
	}()
	if action != nil {
		action(t)
	}
}

// unwind runs the deferred actions of this scope.
func (t *T) unwind() {
	t.cleanups.unwind(func(err error) {
		t.report(failed(err.Error()))
	})
}

func (t *T) ID() TestID {
	return t.id
}

// Failed reports whether any check in this scope has failed so far.
func (t *T) Failed() bool {
	return t.result.Failed()
}

// Defer registers an action to run when this scope exits. Actions run in reverse order of
// registration, exactly once, whether the scope passed, failed, or stopped early.
func (t *T) Defer(action func()) {
	t.cleanups.push(action)
}

// Errorf records a failure and lets the test continue. It is called by the testify assert
// package.
func (t *T) Errorf(format string, args ...interface{}) {
	err := fmt.Errorf(format, args...)
	t.result.Errors = append(t.result.Errors, err)
	t.report(outcomeFromError(err))
}

// FailNow stops the test immediately. Deferred actions still run. It is called by the
// testify require package and by the checks returned from Require.
func (t *T) FailNow() {
	if !t.Failed() {
		t.report(failed("test failed with no failure message"))
	}
	panic(t)
}

// Require returns the same checks as T, except that a failed check stops the test.
func (t *T) Require() Asserter {
	return Asserter{t: t, fatal: true}
}

// Debug adds a message to the test's debug output, which is shown if the test fails.
func (t *T) Debug(message string, args ...interface{}) {
	t.debugLogger.Printf(message, args...)
}

func (t *T) DebugLogger() Logger {
	return &t.debugLogger
}

// report counts the outcome and streams it to the test logger straight away.
func (t *T) report(o Outcome) {
	t.result.Assertions++
	t.env.stats.Assertions++
	if !o.Passed {
		t.result.Failures++
		t.env.stats.Failures++
	}
	t.env.testLogger.AssertionResult(t.id, o)
}
