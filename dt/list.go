package dt

import (
	"fmt"
	"iter"

	"github.com/tychoish/dlist/ers"
)

// List provides a doubly linked list that keeps track of the
// iterators created against it. When the list is modified, through
// the list's own methods or through Swap and MoveBefore, every
// affected iterator is updated so that it stays at the same logical
// position.
//
// The list owns its nodes, but not the values that pointer-typed
// elements refer to. Callers are responsible for their own
// concurrency control.
type List[T any] struct {
	head  *node[T]
	tail  *node[T]
	iters map[*Iterator[T]]struct{}
}

// NewList constructs a list holding the items, in order.
func NewList[T any](items ...T) *List[T] {
	l := &List[T]{}
	l.Append(items...)
	return l
}

// Copy duplicates the list. The nodes in the copy are distinct, and
// no iterators are shared with the original, though if the values
// are themselves references, the values of both lists would be
// shared.
func (l *List[T]) Copy() *List[T] {
	out := &List[T]{}
	for n := l.root().next; n.valid(); n = n.next {
		out.PushBack(n.item)
	}
	return out
}

// IsEmpty reports if the list has no elements.
func (l *List[T]) IsEmpty() bool { return l.root().next == l.tail }

// Len returns the number of elements in the list. This walks the
// list, and is an O(n) operation.
func (l *List[T]) Len() (count int) {
	for n := l.root().next; n.valid(); n = n.next {
		count++
	}
	return
}

// Iterators returns the number of live (unreleased) iterators bound
// to the list.
func (l *List[T]) Iterators() int { return len(l.iters) }

// Begin returns an iterator at the first element of the list. For an
// empty list, Begin is equal to End. The caller is responsible for
// calling Release on the iterator when it is no longer needed.
func (l *List[T]) Begin() *Iterator[T] { return l.newIterator(l.root().next) }

// End returns an iterator at the position after the last element of
// the list. The caller is responsible for calling Release on the
// iterator when it is no longer needed.
func (l *List[T]) End() *Iterator[T] { return l.newIterator(l.end()) }

// Append adds a variadic sequence of items to the end of the list.
func (l *List[T]) Append(items ...T) {
	for idx := range items {
		l.PushBack(items[idx])
	}
}

// PushFront adds a value to the beginning of the list. Iterators at
// elements of the list move back by one, so that they keep their
// logical position (e.g. an iterator at the first element is at the
// new first element.) Iterators at End are unaffected.
func (l *List[T]) PushFront(val T) {
	created := newNode(val)
	created.linkBefore(l.root().next)
	l.notifyInsertedBefore(1, created.next)
}

// PushBack adds a value to the end of the list. No iterator changes
// position.
func (l *List[T]) PushBack(val T) { newNode(val).linkBefore(l.end()) }

// PopFront removes the first element of the list and returns its
// value. Iterators at elements of the list move forward by one, so
// that they keep their logical position. PopFront returns
// ErrInvalidPosition when the list is empty.
func (l *List[T]) PopFront() (out T, _ error) {
	first := l.root().next
	if !first.valid() {
		return out, ErrInvalidPosition
	}

	l.notifyRemovedBefore(1, first)
	first.unlink()
	return first.item, nil
}

// PopBack removes the last element of the list and returns its
// value. Iterators at the last element move to End. PopBack returns
// ErrInvalidPosition when the list is empty.
func (l *List[T]) PopBack() (out T, _ error) {
	last := l.end().prev
	if !last.valid() {
		return out, ErrInvalidPosition
	}

	l.notifyRetired(last)
	last.unlink()
	return last.item, nil
}

// Clear removes every element from the list. Iterators at elements
// of the list move to End.
func (l *List[T]) Clear() {
	for n := l.root().next; n.valid(); n = n.next {
		l.notifyRetired(n)
	}

	l.head.next = l.tail
	l.tail.prev = l.head
}

// Slice exports the contents of the list to a slice.
func (l *List[T]) Slice() []T {
	out := []T{}
	for n := l.root().next; n.valid(); n = n.next {
		out = append(out, n.item)
	}
	return out
}

// Seq returns a native go iterator function for the items in a
// list. Seq does not register an Iterator, and the list must not be
// modified during iteration.
func (l *List[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.root().next; n.valid(); n = n.next {
			if !yield(n.item) {
				return
			}
		}
	}
}

// String renders the values of the list in the same form as a slice.
func (l *List[T]) String() string { return fmt.Sprint(l.Slice()) }

func (l *List[T]) root() *node[T] {
	ers.Invariant.OK(l != nil, ErrUninitializedContainer)

	if l.head == nil {
		l.uncheckedSetup()
	}

	return l.head
}

func (l *List[T]) end() *node[T] { l.root(); return l.tail }

// uncheckedSetup links the sentinels so that the head's previous and
// the tail's next are themselves: moving past either end of the list
// leaves an iterator where it is.
func (l *List[T]) uncheckedSetup() {
	l.head = &node[T]{}
	l.tail = &node[T]{}
	l.head.prev = l.head
	l.head.next = l.tail
	l.tail.prev = l.head
	l.tail.next = l.tail
}

func (l *List[T]) newIterator(at *node[T]) *Iterator[T] {
	it := &Iterator[T]{list: l, current: at}
	l.addIterator(it)
	return it
}

func (l *List[T]) addIterator(it *Iterator[T]) {
	if l.iters == nil {
		l.iters = map[*Iterator[T]]struct{}{}
	}
	l.iters[it] = struct{}{}
}

func (l *List[T]) removeIterator(it *Iterator[T]) { delete(l.iters, it) }

// notifySwapOccurred tells every iterator of the list that the nodes
// a and b have exchanged positions.
func (l *List[T]) notifySwapOccurred(a, b *node[T]) {
	for it := range l.iters {
		it.swapOccurred(a, b)
	}
}

// notifyInsertedBefore tells every iterator at firstAfter, or at any
// later element, that count nodes were inserted ahead of it.
func (l *List[T]) notifyInsertedBefore(count int, firstAfter *node[T]) {
	l.notifyInsertedBetween(count, firstAfter, l.tail)
}

// notifyRemovedBefore tells every iterator at firstAfter, or at any
// later element, that count nodes were removed ahead of it.
func (l *List[T]) notifyRemovedBefore(count int, firstAfter *node[T]) {
	l.notifyRemovedBetween(count, firstAfter, l.tail)
}

// notifyInsertedBetween is notifyInsertedBefore limited to the
// iterators at first and the elements up to, but not including,
// until.
func (l *List[T]) notifyInsertedBetween(count int, first, until *node[T]) {
	for _, at := range l.positioned(first, until) {
		at.iter.insertedBefore(at.node, count)
	}
}

// notifyRemovedBetween is notifyRemovedBefore limited to the
// iterators at first and the elements up to, but not including,
// until.
func (l *List[T]) notifyRemovedBetween(count int, first, until *node[T]) {
	for _, at := range l.positioned(first, until) {
		at.iter.removedBefore(at.node, count)
	}
}

// notifyRetired moves every iterator at n to End. Unlike a swap, the
// iterators already at End stay there.
func (l *List[T]) notifyRetired(n *node[T]) {
	for it := range l.iters {
		if it.current == n {
			it.swapOccurred(n, l.tail)
		}
	}
}

// retireAll moves every iterator of the list to End.
func (l *List[T]) retireAll() {
	for it := range l.iters {
		it.current = l.tail
	}
}

// extend relinks all elements of from onto the end of the list in
// one step. The iterators of from at the moved elements are retired
// to its End.
func (l *List[T]) extend(from *List[T]) {
	first, last := from.root().next, from.tail.prev
	if !first.valid() {
		return
	}
	for it := range from.iters {
		if it.current.valid() {
			it.current = from.tail
		}
	}
	from.head.next = from.tail
	from.tail.prev = from.head

	end := l.end()
	first.prev = end.prev
	last.next = end
	end.prev.next = first
	end.prev = last
}

type position[T any] struct {
	iter *Iterator[T]
	node *node[T]
}

// positioned finds the iterators at the elements from first up to
// until. All matches are collected before any iterator moves, so
// that an iterator shifted onto a later node is not shifted a second
// time.
func (l *List[T]) positioned(first, until *node[T]) []position[T] {
	live := 0
	for it := range l.iters {
		if it.current.valid() {
			live++
		}
	}
	if live == 0 {
		return nil
	}

	var out []position[T]
	for n := first; n != until && n.valid() && len(out) < live; n = n.next {
		for it := range l.iters {
			if it.current == n {
				out = append(out, position[T]{iter: it, node: n})
			}
		}
	}
	return out
}
