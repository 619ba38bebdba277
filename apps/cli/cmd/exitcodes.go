package cmd

import (
	"errors"

	"github.com/abdul-hamid-achik/apismoke/packages/suite"
)

// Exit codes for apismoke CLI
const (
	// ExitSuccess indicates all cases passed
	ExitSuccess = 0

	// ExitTestFailure indicates a case returned an unexpected status
	ExitTestFailure = 1

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitNetworkError indicates a network/connection error
	ExitNetworkError = 4

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

// exitError carries an explicit exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	var mismatch *suite.StatusMismatchError
	if errors.As(err, &mismatch) {
		return ExitTestFailure
	}

	var caseErr *suite.CaseError
	if errors.As(err, &caseErr) {
		return ExitNetworkError
	}

	return ExitTestFailure
}
