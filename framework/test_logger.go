package framework

// TestLogger receives every reporting event of a run, in order.
type TestLogger interface {
	GroupStarted(id TestID)
	AssertionResult(id TestID, outcome Outcome)
	TestFinished(id TestID, result TestResult, debugOutput CapturedOutput)
	GroupFinished(id TestID, stats Stats)
	RunFinished(results Results)
}

type nullTestLogger struct{}

func (n nullTestLogger) GroupStarted(TestID)                             {}
func (n nullTestLogger) AssertionResult(TestID, Outcome)                 {}
func (n nullTestLogger) TestFinished(TestID, TestResult, CapturedOutput) {}
func (n nullTestLogger) GroupFinished(TestID, Stats)                     {}
func (n nullTestLogger) RunFinished(Results)                             {}
