package harness

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readOutcomes(t *testing.T, r *OutcomeReader, count int) []Result {
	t.Helper()
	results, err := r.Read(count)
	require.NoError(t, err)
	return results
}

func TestOutcomeReaderClassifiesMarkedLines(t *testing.T) {
	input := "Testing asserts:\n" +
		"  ✕ int: expected 1 == 2\n" +
		"  ✓ int: 1 == 1\n" +
		"  Passed: asserts/x\n" +
		"    ✓ nested\n"
	r := NewOutcomeReader(strings.NewReader(input))
	assert.Equal(t, []Result{Failure, Success, Success}, readOutcomes(t, r, 10))
}

func TestOutcomeReaderResumesWhereItStopped(t *testing.T) {
	input := "✓ a\n✕ b\n✕ c\n✓ d\n"
	r := NewOutcomeReader(strings.NewReader(input))
	assert.Equal(t, []Result{Success, Failure}, readOutcomes(t, r, 2))
	assert.Equal(t, []Result{Failure}, readOutcomes(t, r, 1))
	assert.Equal(t, []Result{Success}, readOutcomes(t, r, 5))
	assert.Empty(t, readOutcomes(t, r, 1))
}

func TestOutcomeReaderIgnoresMarkersLaterInLine(t *testing.T) {
	input := "Total ✓ ✕\nx✓\n✓\n"
	r := NewOutcomeReader(bufio.NewReader(strings.NewReader(input)))
	assert.Equal(t, []Result{Success}, readOutcomes(t, r, 5))
}

func TestOutcomeReaderHandlesShortLines(t *testing.T) {
	input := "ab\n\n   \n✕\n"
	r := NewOutcomeReader(strings.NewReader(input))
	assert.Equal(t, []Result{Failure}, readOutcomes(t, r, 5))
}
