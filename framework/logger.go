package framework

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Logger is the minimal diagnostic logging interface used by the framework and the harness.
type Logger interface {
	Printf(message string, args ...interface{})
}

// LoggerFunc adapts a printf-style function to Logger.
type LoggerFunc func(message string, args ...interface{})

func (f LoggerFunc) Printf(message string, args ...interface{}) { f(message, args...) }

type nullLogger struct{}

func (n nullLogger) Printf(message string, args ...interface{}) {}

func NullLogger() Logger { return nullLogger{} }

type CapturedMessage struct {
	Time    time.Time
	Message string
}

type CapturedOutput []CapturedMessage

// CapturingLogger buffers messages so that they can be shown later, for instance only if
// the test that produced them failed.
type CapturingLogger struct {
	output []CapturedMessage
	lock   sync.Mutex
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	l.lock.Lock()
	l.output = append(l.output, CapturedMessage{Time: time.Now(), Message: fmt.Sprintf(message, args...)})
	l.lock.Unlock()
}

func (l *CapturingLogger) Output() CapturedOutput {
	l.lock.Lock()
	ret := append(CapturedOutput(nil), l.output...)
	l.lock.Unlock()
	return ret
}

// Lines returns every captured message split into single lines.
func (output CapturedOutput) Lines() []string {
	var lines []string
	for _, m := range output {
		lines = append(lines, strings.Split(strings.TrimRight(m.Message, "\n"), "\n")...)
	}
	return lines
}

// Dump writes each captured line to dest with the given prefix.
func (output CapturedOutput) Dump(dest io.Writer, prefix string) {
	for _, line := range output.Lines() {
		fmt.Fprintf(dest, "%s%s\n", prefix, line)
	}
}
