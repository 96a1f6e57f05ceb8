// Package dt provides a doubly linked list whose iterators stay
// correctly positioned across splices, and a merge sort that sorts
// such a list by relinking its nodes rather than copying values.
//
// The zero value of a List is ready to use. Lists and their iterators
// are not safe for access from multiple concurrent go routines.
package dt

import "github.com/tychoish/dlist/ers"

// ErrUninitializedContainer is the content of the panic produced when you
// attempt to perform an operation on a nil list.
const ErrUninitializedContainer ers.Error = ers.Error("uninitialized container")

// ErrInvalidPosition is returned when dereferencing an iterator that
// is not at a value: the position one past the last element, or one
// before the first.
const ErrInvalidPosition ers.Error = ers.Error("dereferencing at invalid position")

// ErrReleasedIterator is the content of the panic produced when an
// iterator is used after Release.
const ErrReleasedIterator ers.Error = ers.Error("use of released iterator")
