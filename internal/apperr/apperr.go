// Package apperr defines the error type shared by werk packages. Each error
// carries the process exit code reported to the shell.
package apperr

import (
	"errors"
	"fmt"
)

// Exit codes. Precondition failures get their own code so that shell hooks
// and scripts can tell them apart.
const (
	ExitOK             = 0
	ExitError          = 1
	ExitSystemError    = 2
	ExitAlreadyActive  = 3
	ExitNotActive      = 4
	ExitBreakRequired  = 5
	ExitProjectBlocked = 6
	ExitInvalidMode    = 7
)

// Error represents a werk error. Package level values act as templates:
// Fmt and Wrap return copies that still match the template with errors.Is.
type Error struct {
	Message string
	Code    int
	Cause   error
	base    *Error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is e or the template e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || e.root() == t
}

// ExitCode satisfies the urfave/cli ExitCoder interface.
func (e *Error) ExitCode() int {
	if e.Code == 0 {
		return ExitError
	}

	return e.Code
}

// Fmt returns a copy of the error with its message formatted using args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Code:    e.Code,
		Cause:   e.Cause,
		base:    e.root(),
	}
}

// Wrap returns a copy of the error that wraps err.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Code:    e.Code,
		Cause:   err,
		base:    e.root(),
	}
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}

// ExitCode extracts the exit code for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.ExitCode()
	}

	return ExitError
}
