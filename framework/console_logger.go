package framework

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

// ConsoleTestLogger is the standard TestLogger. It writes the run's report as it happens,
// one line per event.
type ConsoleTestLogger struct {
	out   *stickyWriter
	quiet bool
	timer bool
	green *color.Color
	red   *color.Color
}

// stickyWriter keeps the first write error and drops everything written after it.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	if err != nil {
		s.err = err
	}
	return n, err
}

// ConsoleOptions configure a ConsoleTestLogger.
type ConsoleOptions struct {
	// Quiet prints only failed assertions, failed tests and the final summary.
	Quiet bool
	// Timer appends elapsed times to test, group and run lines.
	Timer bool
	// Color colors the outcome markers.
	Color bool
}

// NewConsoleTestLogger creates a logger that writes the report to out.
func NewConsoleTestLogger(out io.Writer, opts ConsoleOptions) *ConsoleTestLogger {
	c := &ConsoleTestLogger{
		out:   &stickyWriter{w: out},
		quiet: opts.Quiet,
		timer: opts.Timer,
		green: color.New(color.FgGreen),
		red:   color.New(color.FgRed, color.Bold),
	}
	for _, col := range []*color.Color{c.green, c.red} {
		if opts.Color {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return c
}

// Err returns the first error returned by the underlying writer, if any.
func (c *ConsoleTestLogger) Err() error {
	return c.out.err
}

func (c *ConsoleTestLogger) GroupStarted(id TestID) {
	if c.quiet {
		return
	}
	c.printf("%sTesting %s:\n", indent(id.Depth()), id.Name())
}

func (c *ConsoleTestLogger) AssertionResult(id TestID, outcome Outcome) {
	if c.quiet && outcome.Passed {
		return
	}
	marker := c.green.Sprint(outcome.Marker())
	if !outcome.Passed {
		marker = c.red.Sprint(outcome.Marker())
	}
	c.printf("%s%s %s\n", indent(id.Depth()), marker, outcome.Message)
	for _, line := range outcome.Detail {
		c.printf("%s%s\n", indent(id.Depth()+2), line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id TestID, result TestResult, debugOutput CapturedOutput) {
	if !result.Failed() {
		if !c.quiet {
			c.printf("%sPassed: %s%s\n", indent(id.Depth()), id, c.elapsed(result.Elapsed))
		}
		return
	}
	c.printf("%sFailed: %s%s\n", indent(id.Depth()), id, c.elapsed(result.Elapsed))
	debugOutput.Dump(c.out, indent(id.Depth()+1)+"DEBUG ")
}

func (c *ConsoleTestLogger) GroupFinished(id TestID, stats Stats) {
	if c.quiet {
		return
	}
	c.printf("%s%s: Passed %d/%d tests.%s\n", indent(id.Depth()), id.Name(),
		stats.Passed(), stats.Tests, c.elapsed(stats.Elapsed))
	if len(id.Path) == 1 {
		c.printf("\n")
	}
}

func (c *ConsoleTestLogger) RunFinished(results Results) {
	c.printf("Total: Passed %d/%d tests, %d/%d assertions failed.%s\n",
		results.Passed(), results.Stats.Tests, results.Stats.Failures, results.Assertions,
		c.elapsed(results.Elapsed))
}

func (c *ConsoleTestLogger) elapsed(d time.Duration) string {
	if !c.timer {
		return ""
	}
	return " (" + formatDuration(d) + ")"
}

func (c *ConsoleTestLogger) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%.2fµs", float64(d)/float64(time.Microsecond))
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
