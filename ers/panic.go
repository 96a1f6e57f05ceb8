package ers

import (
	"errors"
	"fmt"
)

// Invariant provides a namespace for making runtime invariant
// assertions. These all raise panics, passing error objects from
// panic, which can be more easily handled. Every panic value is an
// error rooted in ErrInvariantViolation.
var Invariant RuntimeInvariant = RuntimeInvariant{}

// RuntimeInvariant is a type defined to create a namespace, callable
// (typically) via the Invariant symbol. Access these functions as in:
//
//	ers.Invariant.OK(len(slice) > 0, "slice must have elements", len(slice))
type RuntimeInvariant struct{}

// OK panics if the condition is false, passing an error that is
// rooted in ErrInvariantViolation. Otherwise the operation is a noop.
func (RuntimeInvariant) OK(cond bool, args ...any) {
	if !cond {
		panic(NewInvariantViolation(args...))
	}
}

// Failure unconditionally raises an invariant failure error and
// processes the arguments as with the other invariant failures:
// extracting errors and aggregating constituent errors.
func (RuntimeInvariant) Failure(args ...any) { panic(NewInvariantViolation(args...)) }

// Must raises an invariant error if the error is not nil. The content
// of the panic is both--via wrapping--an ErrInvariantViolation and
// the error itself.
func (RuntimeInvariant) Must(err error, args ...any) {
	if err != nil {
		panic(Join(Wrap(err, args...), ErrInvariantViolation))
	}
}

// NewInvariantViolation creates a new error object, which always
// includes ErrInvariantViolation, annotated with the arguments.
func NewInvariantViolation(args ...any) error {
	switch len(args) {
	case 0:
		return ErrInvariantViolation
	case 1:
		switch ei := args[0].(type) {
		case error:
			return Join(ei, ErrInvariantViolation)
		case string:
			return Join(New(ei), ErrInvariantViolation)
		case func() error:
			return Join(ei(), ErrInvariantViolation)
		default:
			return Join(fmt.Errorf("%v", args[0]), ErrInvariantViolation)
		}
	default:
		rest, errs := ExtractErrors(args)
		if len(rest) == 0 {
			return Join(append(errs, ErrInvariantViolation)...)
		}
		return Join(append(append([]error{errors.New(fmt.Sprint(rest...))}, errs...), ErrInvariantViolation)...)
	}
}

// ParsePanic converts a panic to an error, if it is not, and attaching
// the ErrRecoveredPanic error to that error. If no panic is
// detected, ParsePanic returns nil.
func ParsePanic(r any) error {
	if r == nil {
		return nil
	}

	switch err := r.(type) {
	case error:
		return Join(err, ErrRecoveredPanic)
	case string:
		return Join(New(err), ErrRecoveredPanic)
	default:
		return Join(fmt.Errorf("[%T]: %v", err, err), ErrRecoveredPanic)
	}
}

// WithRecoverCall runs a function without arguments that does not
// produce an error and, if the function panics, converts it into an
// error.
func WithRecoverCall(fn func()) (err error) {
	defer func() { err = ParsePanic(recover()) }()
	fn()
	return
}

// WithRecoverDo runs a function with a panic handler that converts
// the panic to an error.
func WithRecoverDo[T any](fn func() T) (out T, err error) {
	defer func() { err = ParsePanic(recover()) }()
	out = fn()
	return
}
