package framework

import "fmt"

// cleanupStack holds the deferred actions of one scope. It is only touched by the goroutine
// that runs the scope.
type cleanupStack struct {
	actions []func()
}

func (s *cleanupStack) push(action func()) {
	s.actions = append(s.actions, action)
}

// unwind pops and runs every action, most recent first. Each action runs exactly once; a
// panicking action is reported through onPanic and does not stop the ones below it.
func (s *cleanupStack) unwind(onPanic func(error)) {
	for len(s.actions) > 0 {
		last := len(s.actions) - 1
		action := s.actions[last]
		s.actions = s.actions[:last]
		if err := runCleanup(action); err != nil && onPanic != nil {
			onPanic(err)
		}
	}
}

func runCleanup(action func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*T); ok {
				// FailNow inside a deferred action; the failure was already reported
				return
			}
			err = fmt.Errorf("panic in deferred action: %+v", r)
		}
	}()
	action()
	return nil
}
