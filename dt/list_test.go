package dt_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tychoish/dlist/assert"
	"github.com/tychoish/dlist/assert/check"
	"github.com/tychoish/dlist/dt"
	"github.com/tychoish/dlist/ers"
)

func at[T any](list *dt.List[T], idx int) *dt.Iterator[T] { return list.Begin().Advance(idx) }

func value[T any](t testing.TB, it *dt.Iterator[T]) T {
	t.Helper()
	val, err := it.Value()
	assert.NotError(t, err)
	return val
}

func sequence(size int) *dt.List[int] {
	list := &dt.List[int]{}
	for i := 0; i < size; i++ {
		list.PushBack(i)
	}
	return list
}

func TestList(t *testing.T) {
	t.Run("ZeroValue", func(t *testing.T) {
		list := &dt.List[int]{}
		assert.True(t, list.IsEmpty())
		assert.Equal(t, list.Len(), 0)

		begin, end := list.Begin(), list.End()
		assert.True(t, begin.Equal(end))
		assert.True(t, !begin.Valid())
		assert.Equal(t, list.Iterators(), 2)

		begin.Release()
		end.Release()
		assert.Equal(t, list.Iterators(), 0)
	})
	t.Run("ExpectedPanicUninitialized", func(t *testing.T) {
		err := ers.WithRecoverCall(func() {
			var list *dt.List[string]
			list.PushBack("hi")
		})
		assert.Error(t, err)
		assert.ErrorIs(t, err, dt.ErrUninitializedContainer)
		assert.ErrorIs(t, err, ers.ErrInvariantViolation)
		assert.ErrorIs(t, err, ers.ErrRecoveredPanic)
	})
	t.Run("Traversal", func(t *testing.T) {
		list := dt.NewList(0, 1, 2, 3, 4)
		assert.Equal(t, list.Len(), 5)

		forward := []int{}
		it, end := list.Begin(), list.End()
		for ; !it.Equal(end); it.Next() {
			forward = append(forward, value(t, it))
		}
		assert.EqualItems(t, forward, []int{0, 1, 2, 3, 4})

		reverse := []int{}
		begin := list.Begin()
		for it = list.End().Prev(); it.Valid(); it.Prev() {
			reverse = append(reverse, value(t, it))
		}
		assert.EqualItems(t, reverse, []int{4, 3, 2, 1, 0})
		begin.Release()

		check.EqualItems(t, list.Slice(), []int{0, 1, 2, 3, 4})
		check.Equal(t, list.String(), "[0 1 2 3 4]")
	})
	t.Run("Seq", func(t *testing.T) {
		list := dt.NewList("a", "b", "c")
		out := []string{}
		for val := range list.Seq() {
			out = append(out, val)
			if val == "b" {
				break
			}
		}
		assert.EqualItems(t, out, []string{"a", "b"})
		assert.Equal(t, list.Iterators(), 0)
	})
	t.Run("SentinelsAreSticky", func(t *testing.T) {
		list := dt.NewList(1, 2)

		before := list.Begin().Prev().Prev().Prev()
		assert.True(t, !before.Valid())
		_, err := before.Value()
		assert.ErrorIs(t, err, dt.ErrInvalidPosition)
		assert.Equal(t, value(t, before.Next()), 1)

		end := list.End().Next().Next()
		assert.True(t, end.Equal(list.End()))
		_, err = end.Value()
		assert.ErrorIs(t, err, dt.ErrInvalidPosition)
		_, err = end.Ptr()
		assert.ErrorIs(t, err, dt.ErrInvalidPosition)
		assert.ErrorIs(t, end.Set(42), dt.ErrInvalidPosition)
		check.EqualItems(t, list.Slice(), []int{1, 2})
	})
	t.Run("Clear", func(t *testing.T) {
		list := dt.NewList(1, 2, 3)
		first, second := list.Begin(), at(list, 1)
		end := list.End()

		list.Clear()
		assert.True(t, list.IsEmpty())
		assert.True(t, list.Begin().Equal(list.End()))
		assert.True(t, first.Equal(end))
		assert.True(t, second.Equal(end))

		list.PushBack(4)
		assert.True(t, first.Equal(end))
		check.EqualItems(t, list.Slice(), []int{4})
	})
	t.Run("Copy", func(t *testing.T) {
		list := dt.NewList(1, 2, 3)
		it := list.Begin()
		defer it.Release()

		cp := list.Copy()
		assert.Equal(t, cp.Iterators(), 0)
		assert.EqualItems(t, cp.Slice(), list.Slice())

		assert.NotError(t, cp.Begin().Set(100))
		check.Equal(t, value(t, it), 1)
		check.EqualItems(t, cp.Slice(), []int{100, 2, 3})
	})
	t.Run("Nested", func(t *testing.T) {
		outer := &dt.List[*dt.List[int]]{}
		outer.PushBack(dt.NewList(1, 2))
		outer.PushBack(dt.NewList(3))

		inner := value(t, outer.Begin())
		inner.PushBack(42)
		check.EqualItems(t, inner.Slice(), []int{1, 2, 42})

		last := value(t, outer.End().Prev())
		check.EqualItems(t, last.Slice(), []int{3})
	})
	t.Run("PushFront", func(t *testing.T) {
		list := dt.NewList(1, 2)
		first, second, end := list.Begin(), at(list, 1), list.End()

		list.PushFront(0)
		check.EqualItems(t, list.Slice(), []int{0, 1, 2})
		check.Equal(t, value(t, first), 0)
		check.Equal(t, value(t, second), 1)
		check.True(t, end.Equal(list.End()))
		check.True(t, end.Prev().Valid())
	})
	t.Run("PushFrontEmpty", func(t *testing.T) {
		list := &dt.List[int]{}
		begin, end := list.Begin(), list.End()

		list.PushFront(7)
		check.True(t, begin.Equal(end))
		check.Equal(t, value(t, list.Begin()), 7)
	})
	t.Run("PushBack", func(t *testing.T) {
		list := dt.NewList(1)
		first, end := list.Begin(), list.End()

		list.PushBack(2)
		check.Equal(t, value(t, first), 1)
		check.True(t, end.Equal(list.End()))
		check.Equal(t, value(t, end.Prev()), 2)
	})
	t.Run("PopFront", func(t *testing.T) {
		list := dt.NewList(0, 1, 2)
		first, second, third := list.Begin(), at(list, 1), at(list, 2)

		val, err := list.PopFront()
		assert.NotError(t, err)
		assert.Equal(t, val, 0)
		check.EqualItems(t, list.Slice(), []int{1, 2})
		check.Equal(t, value(t, first), 1)
		check.Equal(t, value(t, second), 2)
		check.True(t, third.Equal(list.End()))

		_, _ = list.PopFront()
		_, _ = list.PopFront()
		_, err = list.PopFront()
		assert.ErrorIs(t, err, dt.ErrInvalidPosition)
	})
	t.Run("PopBack", func(t *testing.T) {
		list := dt.NewList(0, 1, 2)
		first, last, end := list.Begin(), at(list, 2), list.End()

		val, err := list.PopBack()
		assert.NotError(t, err)
		assert.Equal(t, val, 2)
		check.True(t, last.Equal(list.End()))
		check.True(t, end.Equal(list.End()))
		check.Equal(t, value(t, first), 0)

		_, _ = list.PopBack()
		_, _ = list.PopBack()
		_, err = list.PopBack()
		assert.ErrorIs(t, err, dt.ErrInvalidPosition)
	})
}

func TestIterator(t *testing.T) {
	t.Run("ReleasedPanics", func(t *testing.T) {
		list := dt.NewList(1)
		it := list.Begin()
		it.Release()
		it.Release()
		assert.Equal(t, list.Iterators(), 0)

		err := ers.WithRecoverCall(func() { it.Next() })
		assert.ErrorIs(t, err, dt.ErrReleasedIterator)
		assert.ErrorIs(t, err, ers.ErrInvariantViolation)
	})
	t.Run("EqualAcrossLists", func(t *testing.T) {
		one, two := dt.NewList(1), dt.NewList(1)
		assert.Panic(t, func() { one.Begin().Equal(two.Begin()) })
	})
	t.Run("Movement", func(t *testing.T) {
		list := sequence(6)

		it := list.Begin()
		check.Equal(t, value(t, it.Advance(3)), 3)
		check.Equal(t, value(t, it.Retreat(2)), 1)
		check.Equal(t, value(t, it.Advance(-1)), 0)
		check.Equal(t, value(t, it.Retreat(-5)), 5)
		check.True(t, !it.Advance(10).Valid())

		off := list.Begin().Offset(4)
		check.Equal(t, value(t, off), 4)

		cur := list.Begin()
		prev := cur.PostNext()
		check.Equal(t, value(t, prev), 0)
		check.Equal(t, value(t, cur), 1)

		next := cur.PostPrev()
		check.Equal(t, value(t, next), 1)
		check.Equal(t, value(t, cur), 0)
	})
	t.Run("CloneAndAssign", func(t *testing.T) {
		list := dt.NewList(1, 2, 3)
		other := dt.NewList(10, 20)

		it := at(list, 1)
		cp := it.Clone()
		assert.True(t, cp.Equal(it))
		cp.Next()
		check.Equal(t, value(t, it), 2)
		check.Equal(t, value(t, cp), 3)
		check.Equal(t, list.Iterators(), 2)

		cp.Assign(other.Begin())
		check.Equal(t, list.Iterators(), 1)
		check.Equal(t, other.Iterators(), 2)
		check.Equal(t, value(t, cp), 10)
	})
	t.Run("PtrAndSet", func(t *testing.T) {
		list := dt.NewList(1, 2, 3)
		it := at(list, 1)

		ptr, err := it.Ptr()
		assert.NotError(t, err)
		*ptr = 42
		check.EqualItems(t, list.Slice(), []int{1, 42, 3})

		assert.NotError(t, it.Set(7))
		check.Equal(t, *ptr, 7)

		dt.Swap(list.Begin(), at(list, 1))
		check.EqualItems(t, list.Slice(), []int{7, 1, 3})
		check.Equal(t, *ptr, 7)
	})
}

func TestSwap(t *testing.T) {
	for size := 2; size <= 4; size++ {
		for i := 0; i < size; i++ {
			for j := 0; j < size; j++ {
				list := sequence(size)
				a, b := at(list, i), at(list, j)

				bystanders := map[int]*dt.Iterator[int]{}
				for k := 0; k < size; k++ {
					if k != i && k != j {
						bystanders[k] = at(list, k)
					}
				}

				dt.Swap(a, b)

				expected := make([]int, size)
				for k := range expected {
					expected[k] = k
				}
				expected[i], expected[j] = expected[j], expected[i]

				if diff := cmp.Diff(expected, list.Slice()); diff != "" {
					t.Fatalf("swap %d and %d of %d (-want +got):\n%s", i, j, size, diff)
				}

				reverse := []int{}
				for it := list.End().Prev(); it.Valid(); it.Prev() {
					reverse = append(reverse, value(t, it))
				}
				for k := range reverse {
					check.Equal(t, reverse[k], expected[size-1-k])
				}

				check.Equal(t, value(t, a), j)
				check.Equal(t, value(t, b), i)
				for k, it := range bystanders {
					check.Equal(t, value(t, it), k)
				}
			}
		}
	}

	t.Run("Sentinels", func(t *testing.T) {
		list := sequence(3)
		first := list.Begin()

		dt.Swap(first, list.End())
		dt.Swap(list.Begin().Prev(), first)
		dt.Swap(list.End(), list.End())
		check.EqualItems(t, list.Slice(), []int{0, 1, 2})
		check.Equal(t, value(t, first), 0)
	})
	t.Run("AcrossLists", func(t *testing.T) {
		one, two := dt.NewList(1, 2, 3), dt.NewList(10, 20)
		a, b := at(one, 1), two.Begin()
		last := at(two, 1)

		dt.Swap(a, b)
		check.EqualItems(t, one.Slice(), []int{1, 10, 3})
		check.EqualItems(t, two.Slice(), []int{2, 20})
		check.Equal(t, value(t, a), 10)
		check.Equal(t, value(t, b), 2)
		check.Equal(t, value(t, last), 20)
		check.Equal(t, one.Len(), 3)
		check.Equal(t, two.Len(), 2)
	})
}

func TestMoveBefore(t *testing.T) {
	t.Run("InList", func(t *testing.T) {
		list := dt.NewList(2, 1, 0)
		mover, dest := at(list, 2), list.Begin()

		dt.MoveBefore(mover, dest)
		check.EqualItems(t, list.Slice(), []int{0, 2, 1})
		check.Equal(t, value(t, dest), 0)
		check.True(t, mover.Equal(list.End()))

		end := list.End()
		dt.MoveBefore(at(list, 1), end)
		check.EqualItems(t, list.Slice(), []int{0, 1, 2})
		check.Equal(t, value(t, dest), 0)
		check.True(t, end.Equal(list.End()))
	})
	t.Run("Forward", func(t *testing.T) {
		list := sequence(5)
		observers := []*dt.Iterator[int]{at(list, 0), at(list, 2), at(list, 3), at(list, 4)}
		peer := at(list, 1)

		dt.MoveBefore(at(list, 1), at(list, 4))
		check.EqualItems(t, list.Slice(), []int{0, 2, 3, 1, 4})
		check.True(t, peer.Equal(list.End()))

		got := []int{}
		for _, it := range observers {
			got = append(got, value(t, it))
		}
		check.EqualItems(t, got, []int{0, 3, 1, 4})
	})
	t.Run("Backward", func(t *testing.T) {
		list := sequence(5)
		observers := []*dt.Iterator[int]{at(list, 0), at(list, 1), at(list, 2), at(list, 4)}

		dt.MoveBefore(at(list, 3), at(list, 1))
		check.EqualItems(t, list.Slice(), []int{0, 3, 1, 2, 4})

		got := []int{}
		for _, it := range observers {
			got = append(got, value(t, it))
		}
		check.EqualItems(t, got, []int{0, 3, 1, 4})
	})
	t.Run("OutOfList", func(t *testing.T) {
		src, dst := dt.NewList(0, 1, 2), dt.NewList(10, 20)
		mover, dest := at(src, 1), at(dst, 1)
		first, trailing := src.Begin(), at(src, 2)
		front := dst.Begin()

		dt.MoveBefore(mover, dest)
		check.EqualItems(t, src.Slice(), []int{0, 2})
		check.EqualItems(t, dst.Slice(), []int{10, 1, 20})

		check.True(t, mover.Equal(src.End()))
		check.Equal(t, value(t, dest), 1)
		check.Equal(t, value(t, front), 10)
		check.Equal(t, value(t, first), 0)
		check.True(t, trailing.Equal(src.End()))
	})
	t.Run("ToEmptyList", func(t *testing.T) {
		src, dst := dt.NewList(1, 2), &dt.List[int]{}

		dt.MoveBefore(src.Begin(), dst.End())
		dt.MoveBefore(src.Begin(), dst.End())
		check.True(t, src.IsEmpty())
		check.EqualItems(t, dst.Slice(), []int{1, 2})
	})
	t.Run("Noops", func(t *testing.T) {
		list := sequence(3)
		dest := at(list, 2)
		mover := at(list, 1)

		dt.MoveBefore(mover, dest)
		check.EqualItems(t, list.Slice(), []int{0, 1, 2})
		check.True(t, mover.Equal(list.End()))
		check.Equal(t, value(t, dest), 2)

		self := list.Begin()
		dt.MoveBefore(self, self.Clone())
		check.EqualItems(t, list.Slice(), []int{0, 1, 2})

		dt.MoveBefore(list.End(), list.Begin())
		dt.MoveBefore(list.Begin(), list.Begin().Prev())
		check.EqualItems(t, list.Slice(), []int{0, 1, 2})
	})
}
