package harness

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/snowtest/snow-contract-tests/framework"
)

// Comparison is the result of checking some output against expected content.
type Comparison struct {
	// Match is true if both sides have the same bytes and end at the same offset.
	Match bool
	// Offset is the position of the first difference, or the common length if they match.
	Offset int64
	// ExitCode is the exit status of the command that produced the output, if there was one.
	ExitCode int
	// Diff is a line-by-line description of the difference, empty if they match.
	Diff string
}

// CompareStreams reads both streams a byte at a time until they differ or both end.
func CompareStreams(actual, expected io.Reader) (Comparison, error) {
	a, e := bufio.NewReader(actual), bufio.NewReader(expected)
	var offset int64
	for {
		ca, errA := a.ReadByte()
		ce, errE := e.ReadByte()
		if errA != nil && !errors.Is(errA, io.EOF) {
			return Comparison{Offset: offset}, errA
		}
		if errE != nil && !errors.Is(errE, io.EOF) {
			return Comparison{Offset: offset}, errE
		}
		endA, endE := errA != nil, errE != nil
		if endA || endE {
			return Comparison{Match: endA && endE, Offset: offset}, nil
		}
		if ca != ce {
			return Comparison{Offset: offset}, nil
		}
		offset++
	}
}

// CompareFiles compares two files byte by byte.
func CompareFiles(actualPath, expectedPath string) (Comparison, error) {
	actual, err := os.ReadFile(actualPath)
	if err != nil {
		return Comparison{}, err
	}
	expected, err := os.ReadFile(expectedPath)
	if err != nil {
		return Comparison{}, err
	}
	return compareBytes(actual, expected)
}

// CompareOutput runs the command and compares its standard output with the golden file.
func CompareOutput(ctx context.Context, command Command, goldenPath string, logger framework.Logger) (Comparison, error) {
	expected, err := os.ReadFile(goldenPath)
	if err != nil {
		return Comparison{}, fmt.Errorf("cannot read expected output: %w", err)
	}
	result, err := Run(ctx, command, logger)
	if err != nil {
		return Comparison{}, err
	}
	c, err := compareBytes(result.Stdout, expected)
	c.ExitCode = result.ExitCode
	return c, err
}

func compareBytes(actual, expected []byte) (Comparison, error) {
	c, err := CompareStreams(bytes.NewReader(actual), bytes.NewReader(expected))
	if err == nil && !c.Match {
		c.Diff = cmp.Diff(splitLines(expected), splitLines(actual))
	}
	return c, err
}

func splitLines(data []byte) []string {
	return strings.SplitAfter(string(data), "\n")
}

// Describe is a human-readable summary of a failed comparison.
func (c Comparison) Describe() string {
	if c.Match {
		return "output matched"
	}
	return fmt.Sprintf("output differs at byte %d (-expected +actual):\n%s", c.Offset, c.Diff)
}
