package dt

import (
	"golang.org/x/exp/constraints"

	"github.com/tychoish/dlist/dt/cmp"
	"github.com/tychoish/dlist/ers"
)

// MergeSort is a bottom-up merge sort for lists. Sort reorders a list
// by relinking its nodes without copying values; SortRange and
// SortSlice copy values into a scratch list, sort it, and copy the
// values back.
//
// The sort is stable: elements that compare equal keep their relative
// order. A MergeSort holds no state between calls other than its
// Metrics.
type MergeSort[T any] struct {
	lt      cmp.LessThan[T]
	metrics Metrics[T]
}

// SortOption configures a MergeSort.
type SortOption[T any] func(*MergeSort[T])

// WithMetrics attaches an observer to the sort. Passing nil restores
// the default, which does nothing.
func WithMetrics[T any](m Metrics[T]) SortOption[T] {
	return func(ms *MergeSort[T]) {
		if m == nil {
			m = NoopMetrics[T]{}
		}
		ms.metrics = m
	}
}

// NewMergeSort constructs a sort ordered by lt. lt must be a strict
// ordering: lt(a, a) is false.
func NewMergeSort[T any](lt cmp.LessThan[T], opts ...SortOption[T]) *MergeSort[T] {
	ers.Invariant.OK(lt != nil, "merge sort requires a comparison function")

	ms := &MergeSort[T]{lt: lt, metrics: NoopMetrics[T]{}}
	for _, opt := range opts {
		opt(ms)
	}
	return ms
}

// NewNativeMergeSort constructs a sort in ascending order using the <
// operator.
func NewNativeMergeSort[T constraints.Ordered](opts ...SortOption[T]) *MergeSort[T] {
	return NewMergeSort(cmp.LessThanNative[T], opts...)
}

// Metrics returns the sort's observer.
func (ms *MergeSort[T]) Metrics() Metrics[T] { return ms.metrics }

// Sort orders the list in place by relinking its nodes. Iterators at
// elements of the list are moved to End. Lists with fewer than two
// elements are not modified, and the metrics are not called.
func (ms *MergeSort[T]) Sort(list *List[T]) {
	if atMostOne(list) {
		return
	}

	list.retireAll()
	ms.sort(list)
}

// SortRange orders the values from begin up to, but not including,
// end. Both iterators must belong to the same list. The nodes are not
// relinked, so iterators in the range stay where they are while the
// values beneath them change. SortRange returns ErrInvalidPosition,
// without modifying the list, if end does not follow begin.
func (ms *MergeSort[T]) SortRange(begin, end *Iterator[T]) error {
	begin.check()
	end.check()
	ers.Invariant.OK(begin.list == end.list, "sorting a range that spans two lists")

	values := &List[T]{}
	in := begin.Clone()
	defer in.Release()
	for ; !in.Equal(end); in.Next() {
		val, err := in.Value()
		if err != nil {
			return err
		}
		values.PushBack(val)
	}

	if atMostOne(values) {
		return nil
	}
	ms.sort(values)

	out := begin.Clone()
	defer out.Release()
	for val := range values.Seq() {
		ers.Invariant.Must(out.Set(val))
		out.Next()
	}
	return nil
}

// SortSlice orders the slice in place.
func (ms *MergeSort[T]) SortSlice(data []T) {
	if len(data) <= 1 {
		return
	}

	values := NewList(data...)
	ms.sort(values)

	idx := 0
	for val := range values.Seq() {
		data[idx] = val
		idx++
	}
}

// sort breaks the list into runs of one element, held in the active
// buffer, and merges pairs of adjacent runs into the other buffer
// until a single run remains, which is then relinked into the list.
func (ms *MergeSort[T]) sort(list *List[T]) {
	ms.metrics.Reset()

	var buffers [2]List[*List[T]]
	active := 0

	for !list.IsEmpty() {
		run := &List[T]{}
		moveFront(list, run)
		buffers[active].PushBack(run)
	}

	for !atMostOne(&buffers[active]) {
		input, output := &buffers[active], &buffers[1-active]
		for !atMostOne(input) {
			first := input.root().next.item
			second := input.root().next.next.item
			output.PushBack(ms.merge(first, second))
			_, _ = input.PopFront()
			_, _ = input.PopFront()
		}

		if !input.IsEmpty() {
			moveFront(input, output)
		}
		active = 1 - active
	}

	list.extend(buffers[active].root().next.item)
	ms.metrics.Done()
}

// merge relinks the elements of two sorted runs into a new run. When
// the fronts of both runs are equal, the front of the first wins.
func (ms *MergeSort[T]) merge(first, second *List[T]) *List[T] {
	out := &List[T]{}

	for !first.IsEmpty() && !second.IsEmpty() {
		a, b := first.root().next.item, second.root().next.item
		ms.metrics.Compare(a, b)

		if ms.lt(b, a) {
			moveFront(second, out)
			continue
		}

		ms.metrics.Swap()
		moveFront(first, out)
	}

	out.extend(first)
	out.extend(second)
	return out
}

// IsSorted reports if the list is ordered from low to high according
// to lt.
func IsSorted[T any](list *List[T], lt cmp.LessThan[T]) bool {
	if list == nil {
		return true
	}

	for n := list.root().next; n.valid() && n.next.valid(); n = n.next {
		if lt(n.next.item, n.item) {
			return false
		}
	}
	return true
}

func atMostOne[T any](list *List[T]) bool {
	first := list.root().next
	return !first.valid() || !first.next.valid()
}

// moveFront relinks the first element of from to the end of to.
func moveFront[T any](from, to *List[T]) {
	front, end := from.Begin(), to.End()
	defer end.Release()
	defer front.Release()

	front.MoveBefore(end)
}
