package harness

import (
	"bytes"
	"errors"
	"io"
	"unicode"

	"github.com/snowtest/snow-contract-tests/framework"
)

// Result is the classification of one outcome line.
type Result int

const (
	Failure Result = 0
	Success Result = 1
)

func (r Result) String() string {
	if r == Success {
		return "success"
	}
	return "failure"
}

// OutcomeReader extracts assertion outcomes from a framework program's output stream.
//
// It reads one byte at a time. A newline starts a new line and whitespace is skipped; the
// first framework.MarkerWidth other bytes of a line are compared with the two markers, and
// the rest of the line is ignored. Lines that start with anything else are not outcomes.
// Reading resumes where the previous call stopped, so consecutive calls consume consecutive
// outcomes of one stream.
type OutcomeReader struct {
	r        io.ByteReader
	window   []byte
	lineDone bool
}

// NewOutcomeReader reads outcome lines from r.
func NewOutcomeReader(r io.ByteReader) *OutcomeReader {
	return &OutcomeReader{r: r, window: make([]byte, 0, framework.MarkerWidth)}
}

// Read returns up to count outcomes in stream order. It returns fewer only if the stream
// ends first; an error other than EOF is returned along with what was read so far.
func (o *OutcomeReader) Read(count int) ([]Result, error) {
	var results []Result
	for len(results) < count {
		c, err := o.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return results, nil
			}
			return results, err
		}
		if c == '\n' {
			o.lineDone = false
			o.window = o.window[:0]
			continue
		}
		if o.lineDone || (c < 0x80 && unicode.IsSpace(rune(c))) {
			continue
		}
		o.window = append(o.window, c)
		if len(o.window) < framework.MarkerWidth {
			continue
		}
		o.lineDone = true
		switch {
		case bytes.Equal(o.window, []byte(framework.SuccessMarker)):
			results = append(results, Success)
		case bytes.Equal(o.window, []byte(framework.FailureMarker)):
			results = append(results, Failure)
		}
		o.window = o.window[:0]
	}
	return results, nil
}
