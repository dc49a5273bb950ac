// Package failure holds the error kinds the command recovers from.
//
// Only Validation and Conversion errors are recovered: they are logged and end
// the run with a non-zero status. Every other error is unhandled and reaches
// the process boundary as is.
package failure

import (
	"errors"
	"fmt"
)

// Kind is a recovered error category.
type Kind int

const (
	// Validation marks failed checks on inputs (missing files, header names,
	// row and column counts).
	Validation Kind = iota + 1
	// Conversion marks values that could not be converted to the expected type.
	Conversion
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Conversion:
		return "conversion"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is a recovered error.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Validationf returns a Validation error.
func Validationf(format string, args ...interface{}) error {
	return &Error{Kind: Validation, Msg: fmt.Sprintf(format, args...)}
}

// Conversionf returns a Conversion error.
func Conversionf(format string, args ...interface{}) error {
	return &Error{Kind: Conversion, Msg: fmt.Sprintf(format, args...)}
}

// Convert wraps err as a Conversion error.
func Convert(err error, format string, args ...interface{}) error {
	return &Error{Kind: Conversion, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf reports the recovered kind of err, if any error in its chain is one.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
