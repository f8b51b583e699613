// Package errors classifies drawer failures with stable codes so the CLI and UI
// can branch on the kind of failure instead of its message.
package errors

import (
	"errors"
	"fmt"
)

// Code names a failure class.
type Code string

const (
	CodeUnknown Code = "unknown"

	// Catalog errors
	CodeCatalogNotFound   Code = "catalog_not_found"
	CodeCatalogUnreadable Code = "catalog_unreadable"
	CodeCatalogFormat     Code = "catalog_format"

	// Launch errors
	CodeLaunchFailed      Code = "launch_failed"
	CodeLaunchUnsupported Code = "launch_unsupported"

	CodeConfigurationError Code = "configuration_error"
)

// Error pairs a Code with a user-facing message and the cause, if any.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e Error) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return string(e.Code)
	}
}

func (e Error) Unwrap() error {
	return e.Err
}

// Is matches any Error with the same code, so
// errors.Is(err, New(CodeCatalogNotFound, "", nil)) works as a sentinel check.
func (e Error) Is(target error) bool {
	var other Error
	switch t := target.(type) {
	case Error:
		other = t
	case *Error:
		if t == nil {
			return false
		}
		other = *t
	default:
		return false
	}
	return other.Code == e.Code
}

// New builds an Error from a code, message and optional cause.
func New(code Code, msg string, err error) Error {
	return Error{Code: code, Message: msg, Err: err}
}

// Wrapf formats a message and appends the cause's text after a colon. A nil cause
// leaves the message as formatted.
func Wrapf(code Code, err error, format string, args ...any) Error {
	msg := fmt.Sprintf(format, args...)
	if err != nil {
		msg += ": " + err.Error()
	}
	return Error{Code: code, Message: msg, Err: err}
}

// CodeOf returns the code of the first Error in err's chain, or CodeUnknown.
func CodeOf(err error) Code {
	var coded Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeUnknown
}

// IsCode reports whether err's chain carries code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}
