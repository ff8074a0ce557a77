package framework

import (
	"sync"
	"time"
)

// Clock is the time source used to measure groups, tests and the whole run.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// StepClock is a Clock that starts at a fixed time and moves forward by the same step every
// time it is read, so that timed output is reproducible.
type StepClock struct {
	current time.Time
	step    time.Duration
	lock    sync.Mutex
}

// NewStepClock returns a clock that starts at start and advances by step on every read.
func NewStepClock(start time.Time, step time.Duration) *StepClock {
	return &StepClock{current: start, step: step}
}

func (c *StepClock) Now() time.Time {
	c.lock.Lock()
	defer c.lock.Unlock()
	now := c.current
	c.current = c.current.Add(c.step)
	return now
}
