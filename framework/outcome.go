package framework

import "strings"

// The glyphs that start every outcome line. Anything that classifies output by looking at
// the start of a line should compare MarkerWidth bytes rather than assume a literal size.
const (
	SuccessMarker = "✓"
	FailureMarker = "✕"
)

// MarkerWidth is the byte length shared by both markers.
const MarkerWidth = len(SuccessMarker)

// Outcome is the result of a single check.
type Outcome struct {
	Passed  bool
	Message string
	Detail  []string
}

// Marker returns the glyph for the outcome.
func (o Outcome) Marker() string {
	if o.Passed {
		return SuccessMarker
	}
	return FailureMarker
}

func passed(message string) Outcome {
	return Outcome{Passed: true, Message: message}
}

func failed(message string) Outcome {
	return Outcome{Passed: false, Message: message}
}

// outcomeFromError turns a possibly multi-line error message into a failed outcome whose
// first line is the message and whose remaining non-blank lines are detail.
func outcomeFromError(err error) Outcome {
	lines := strings.Split(strings.TrimSpace(err.Error()), "\n")
	o := failed(strings.TrimSpace(lines[0]))
	for _, line := range lines[1:] {
		if line = strings.TrimSpace(line); line != "" {
			o.Detail = append(o.Detail, line)
		}
	}
	return o
}
