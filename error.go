package docxtext

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL  = "internal"
	EINVALID   = "invalid"
	ENOTFOUND  = "not_found"
	EARCHIVE   = "archive"
	EMALFORMED = "malformed"
)

// Error represents an application-specific error. Implementations translate
// errors from their dependencies into an Error with one of the codes above.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string

	err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the error wrapped with %w, if any.
func (e *Error) Unwrap() error {
	return e.err
}

// Errorf is a helper function to return an Error with a given code and
// formatted message. The format accepts %w.
func Errorf(code string, format string, args ...any) *Error {
	err := fmt.Errorf(format, args...)
	return &Error{
		Code:    code,
		Message: err.Error(),
		err:     errors.Unwrap(err),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return their own message.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
