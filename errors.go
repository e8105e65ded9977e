package envvalue

import (
	"fmt"
)

// ErrorCode defines string error
type ErrorCode string

// ErrorCode returns error message
func (e ErrorCode) Error() string {
	return string(e)
}

const (
	// ErrMissing indicates that the variable is not set
	ErrMissing = ErrorCode("variable is missing")
	// ErrInvalid indicates that the value is not one of the allowed values
	ErrInvalid = ErrorCode("value is not allowed")
	// ErrSource indicates that a source failed to look the variable up
	ErrSource = ErrorCode("source lookup failed")
	// ErrType indicates that a result cannot be converted to the requested type
	ErrType = ErrorCode("unexpected result kind")
)

// Error provides error details
type Error struct {
	Key       string
	Value     string
	Allowed   []string
	Directive Directive
	Source    string
	Cause     error
}

func (e *Error) Error() string {
	switch e.Cause {
	case ErrMissing:
		return fmt.Sprintf(`Environment variable "%s" was missing.`, e.Key)
	case ErrInvalid:
		return fmt.Sprintf(
			`Environment variable "%s" (%s) was not one of the allowed values (%s).`,
			e.Key,
			inspect(e.Value),
			inspectList(e.Allowed),
		)
	}

	msg := fmt.Sprintf(`Environment variable "%s"`, e.Key)
	if e.Source != "" {
		msg += fmt.Sprintf(" (source %s)", e.Source)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}
