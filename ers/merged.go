package ers

import (
	"errors"
	"strings"
)

// Stack is the error type returned by Join when more than one non-nil
// error is provided. The errors are held in the order they were
// joined, and errors.Is/errors.As match any of them.
type Stack struct {
	err   error
	next  *Stack
	count int
}

// Join aggregates the non-nil errors. Join returns nil when there are
// no errors, the error itself when there is exactly one, and a *Stack
// otherwise.
func Join(errs ...error) error {
	s := &Stack{}
	for _, err := range errs {
		s.Push(err)
	}

	switch s.count {
	case 0:
		return nil
	case 1:
		return s.err
	default:
		return s
	}
}

// Len returns the number of errors in the stack.
func (e *Stack) Len() int {
	if e == nil {
		return 0
	}
	return e.count
}

// Push adds an error to the end of the stack. Nil errors are
// ignored, and other stacks are flattened.
func (e *Stack) Push(err error) {
	switch werr := err.(type) {
	case nil:
		return
	case *Stack:
		for ; werr != nil && werr.err != nil; werr = werr.next {
			e.Push(werr.err)
		}
		return
	}

	e.count++
	if e.err == nil {
		e.err = err
		return
	}

	tail := e
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = &Stack{err: err, count: 1}
}

// Error produces the aggregated error strings, separated by colons.
func (e *Stack) Error() string {
	if e.err == nil {
		return "<nil>"
	}

	parts := make([]string, 0, e.count)
	for it := e; it != nil && it.err != nil; it = it.next {
		parts = append(parts, it.err.Error())
	}
	return strings.Join(parts, ": ")
}

// Is calls errors.Is on the error at the current layer. The remaining
// layers are reached through Unwrap.
func (e *Stack) Is(err error) bool { return errors.Is(e.err, err) }

// As calls errors.As on the error at the current layer.
func (e *Stack) As(target any) bool { return errors.As(e.err, target) }

// Unwrap returns the next layer of the stack, and is compatible
// with errors.Unwrap.
func (e *Stack) Unwrap() error {
	if e.next == nil || e.next.err == nil {
		return nil
	}
	return e.next
}
