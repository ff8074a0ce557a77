package main

import (
	"errors"
	"fmt"

	"github.com/snowtest/snow-contract-tests/framework"
)

// ExitError is an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func newExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// exitCode extracts the exit code from an error. Any other error is a usage error, since
// cobra reports bad flags and arguments as plain errors.
func exitCode(err error) int {
	if err == nil {
		return framework.ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return framework.ExitUsageError
}
