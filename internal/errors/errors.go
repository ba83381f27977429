// Package errors is the single errors import of the module: stdlib matching plus
// pkg/errors wrapping, so every wrapped error carries the stack of its origin.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error that formats as the given text.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// AsAppError reports whether err carries a value of type T and returns it.
func AsAppError[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}

// Wrap annotates err with a stack trace and message. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a format specifier.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack annotates err with a stack trace at the point WithStack was called.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Origin returns "function file:line" of the deepest recorded stack frame in
// err, or "" when no layer of err captured a stack.
func Origin(err error) string {
	var origin string
	for err != nil {
		if tracer, ok := err.(stackTracer); ok {
			if frames := tracer.StackTrace(); len(frames) > 0 {
				origin = fmt.Sprintf("%n %s:%d", frames[0], frames[0], frames[0])
			}
		}
		err = stderrors.Unwrap(err)
	}

	return origin
}
