package suite

import (
	"errors"
	"fmt"
)

// ErrMissingPath is returned when a case body runs without a routed path.
var ErrMissingPath = errors.New("missing path argument")

// StatusMismatchError reports a case whose response status differs from
// the expected one.
type StatusMismatchError struct {
	Case     string
	Expected int
	Actual   int
}

func (e *StatusMismatchError) Error() string {
	return fmt.Sprintf("%s: expected status %d, got %d", e.Case, e.Expected, e.Actual)
}

// CaseError wraps the transport error of a case.
type CaseError struct {
	Case string
	Err  error
}

func (e *CaseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Case, e.Err)
}

func (e *CaseError) Unwrap() error {
	return e.Err
}
