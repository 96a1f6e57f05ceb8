// Package cmp provides comparators for sorting linked lists.
package cmp

import (
	"time"

	"golang.org/x/exp/constraints"
)

// Orderable allows users to define a method on their types which
// implement a method to provide a LessThan operation.
type Orderable[T any] interface{ LessThan(T) bool }

// LessThan describes a less than operation, typically provided by one
// of the following operations.
type LessThan[T any] func(a, b T) bool

// LessThanNative provides a wrapper around the < operator for types
// that support it, and can be used for sorting lists of compatible
// types. Strings compare byte-wise.
func LessThanNative[T constraints.Ordered](a, b T) bool { return a < b }

// LessThanCustom converts types that implement the Orderable
// interface.
func LessThanCustom[T Orderable[T]](a, b T) bool { return a.LessThan(b) }

// LessThanConverter provides a function to convert a non-orderable
// type to an orderable type.
func LessThanConverter[T any, S constraints.Ordered](converter func(T) S) LessThan[T] {
	return func(a, b T) bool { return LessThanNative(converter(a), converter(b)) }
}

// LessThanTime compares time using the time.Time.Before() method.
func LessThanTime(a, b time.Time) bool { return a.Before(b) }

// LessThanPointer compares the values that two pointers refer to,
// rather than the pointers themselves. Use this to sort slices or
// lists of pointers by their pointees.
func LessThanPointer[T constraints.Ordered](a, b *T) bool { return *a < *b }

// LessThanDeref lifts a comparator for values into a comparator for
// pointers to those values.
func LessThanDeref[T any](fn LessThan[T]) LessThan[*T] {
	return func(a, b *T) bool { return fn(*a, *b) }
}

// Reverse wraps an existing LessThan operator and reverses it's
// direction. Equal values remain equal, so stable sorts stay stable.
func Reverse[T any](fn LessThan[T]) LessThan[T] { return func(a, b T) bool { return fn(b, a) } }
