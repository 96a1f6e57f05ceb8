package dt

import "github.com/tychoish/dlist/ers"

// Iterator is a bidirectional cursor into a List. Iterators are
// created by List.Begin and List.End (and by Clone, Offset, PostNext,
// and PostPrev), and are registered with their list until Release is
// called. While registered, an iterator is kept at the same logical
// position across modifications of the list.
//
// Moving an iterator past either end of the list leaves it at the
// position past the end (or before the beginning).
type Iterator[T any] struct {
	list     *List[T]
	current  *node[T]
	released bool
}

// Swap exchanges the values at the iterators a and b by relinking
// their nodes.
func Swap[T any](a, b *Iterator[T]) { a.SwapWith(b) }

// MoveBefore moves the value at a to the position immediately before
// b, which may be in another list.
func MoveBefore[T any](a, b *Iterator[T]) { a.MoveBefore(b) }

func (it *Iterator[T]) check() {
	ers.Invariant.OK(it != nil && it.list != nil, ErrUninitializedContainer)
	ers.Invariant.OK(!it.released, ErrReleasedIterator)
}

// Release unregisters the iterator from its list. Any further use of
// the iterator panics. Release is safe to call more than once.
func (it *Iterator[T]) Release() {
	if it == nil || it.released {
		return
	}
	it.list.removeIterator(it)
	it.released = true
}

// Clone returns a new iterator, registered with the same list, at
// the same position.
func (it *Iterator[T]) Clone() *Iterator[T] {
	it.check()
	return it.list.newIterator(it.current)
}

// Assign moves the iterator to the list and position of other,
// re-registering it if the lists differ.
func (it *Iterator[T]) Assign(other *Iterator[T]) {
	it.check()
	other.check()

	it.list.removeIterator(it)
	it.list = other.list
	it.current = other.current
	it.list.addIterator(it)
}

// Equal reports if two iterators are at the same position. Iterators
// from different lists are not comparable, and Equal panics if
// passed such a pair.
func (it *Iterator[T]) Equal(other *Iterator[T]) bool {
	it.check()
	other.check()
	ers.Invariant.OK(it.list == other.list, "comparing iterators of different lists")

	return it.current == other.current
}

// Valid reports if the iterator is at a value.
func (it *Iterator[T]) Valid() bool { it.check(); return it.current.valid() }

// Value returns the value at the iterator, or ErrInvalidPosition if
// the iterator is not at a value.
func (it *Iterator[T]) Value() (T, error) { it.check(); return it.current.value() }

// Ptr returns a pointer to the value stored in the list, or
// ErrInvalidPosition if the iterator is not at a value. The pointer
// follows the value when its node is moved.
func (it *Iterator[T]) Ptr() (*T, error) { it.check(); return it.current.ref() }

// Set replaces the value at the iterator, or returns
// ErrInvalidPosition if the iterator is not at a value.
func (it *Iterator[T]) Set(val T) error { it.check(); return it.current.set(val) }

// Next advances the iterator one position, and returns it.
func (it *Iterator[T]) Next() *Iterator[T] { it.check(); it.current = it.current.next; return it }

// Prev moves the iterator back one position, and returns it.
func (it *Iterator[T]) Prev() *Iterator[T] { it.check(); it.current = it.current.prev; return it }

// PostNext advances the iterator one position, and returns a new
// iterator at the original position.
func (it *Iterator[T]) PostNext() *Iterator[T] {
	out := it.Clone()
	it.Next()
	return out
}

// PostPrev moves the iterator back one position, and returns a new
// iterator at the original position.
func (it *Iterator[T]) PostPrev() *Iterator[T] {
	out := it.Clone()
	it.Prev()
	return out
}

// Advance moves the iterator forward by n positions, or backward when
// n is negative, and returns it.
func (it *Iterator[T]) Advance(n int) *Iterator[T] {
	it.check()
	if n < 0 {
		for i := 0; i < -n; i++ {
			it.current = it.current.prev
		}
		return it
	}

	for i := 0; i < n; i++ {
		it.current = it.current.next
	}
	return it
}

// Retreat moves the iterator back by n positions, or forward when n
// is negative, and returns it.
func (it *Iterator[T]) Retreat(n int) *Iterator[T] { return it.Advance(-n) }

// Offset returns a new iterator n positions away from this one.
func (it *Iterator[T]) Offset(n int) *Iterator[T] { return it.Clone().Advance(n) }

// SwapWith exchanges the values at this iterator and other by
// relinking their nodes, which may be in different lists. Both lists
// are notified, so all iterators stay at their positions. SwapWith is
// a noop if either iterator is not at a value.
func (it *Iterator[T]) SwapWith(other *Iterator[T]) {
	it.check()
	other.check()

	if !it.current.valid() || !other.current.valid() {
		return
	}

	a, b := it.current, other.current
	a.swapWith(b)

	it.list.notifySwapOccurred(a, b)
	if other.list != it.list {
		other.list.notifySwapOccurred(a, b)
	}
}

// MoveBefore relinks the value at this iterator immediately before
// the position of other, which may be End or a position in another
// list. Afterwards this iterator is at End of its own list, as are
// any other iterators that were at the moved value. MoveBefore is a
// noop if this iterator is not at a value, or if other is before the
// beginning of its list.
func (it *Iterator[T]) MoveBefore(other *Iterator[T]) {
	it.check()
	other.check()

	moved, dest := it.current, other.current
	if !moved.valid() || dest == other.list.head {
		return
	}

	src := it.list
	if moved == dest || moved.next == dest {
		it.current = src.tail
		return
	}

	// the iterators at the moved value are retired before the
	// notifications, so they are not shifted along with their
	// neighbors.
	for peer := range src.iters {
		if peer.current == moved {
			peer.current = src.tail
		}
	}

	next := moved.next
	forward := src == other.list && reaches(next, dest)
	moved.moveBefore(dest)

	switch {
	case src != other.list:
		other.list.notifyInsertedBefore(1, moved.next)
		src.notifyRemovedBefore(1, next)
	case forward:
		// the values between the old and new position each moved
		// back by one: they are now between next and moved.
		src.notifyRemovedBetween(1, next, moved)
	default:
		// the values between the new and old position each moved
		// forward by one: they are now between dest and next.
		src.notifyInsertedBetween(1, dest, next)
	}
}

// reaches reports if walking forward from a arrives at b before
// passing the end of a list.
func reaches[T any](a, b *node[T]) bool {
	for n := a; ; n = n.next {
		if n == b {
			return true
		}
		if !n.valid() {
			return false
		}
	}
}

func (it *Iterator[T]) swapOccurred(a, b *node[T]) {
	switch it.current {
	case a:
		it.current = b
	case b:
		it.current = a
	}
}

func (it *Iterator[T]) insertedBefore(after *node[T], count int) {
	if it.current == after {
		it.current = it.step(after, -count)
	}
}

func (it *Iterator[T]) removedBefore(after *node[T], count int) {
	if it.current == after {
		it.current = it.step(after, count)
	}
}

func (*Iterator[T]) step(n *node[T], count int) *node[T] {
	for ; count < 0; count++ {
		n = n.prev
	}
	for ; count > 0; count-- {
		n = n.next
	}
	return n
}
