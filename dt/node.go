package dt

// node is one cell of a list. Sentinel nodes (the head and tail of a
// list) have data set to false and hold no value.
//
// The link operations on node only rewrite pointers: callers are
// responsible for keeping iterators positioned.
type node[T any] struct {
	prev *node[T]
	next *node[T]
	data bool
	item T
}

func newNode[T any](val T) *node[T] { return &node[T]{item: val, data: true} }

func (n *node[T]) valid() bool { return n != nil && n.data }

func (n *node[T]) value() (out T, err error) {
	if !n.valid() {
		return out, ErrInvalidPosition
	}
	return n.item, nil
}

func (n *node[T]) ref() (*T, error) {
	if !n.valid() {
		return nil, ErrInvalidPosition
	}
	return &n.item, nil
}

func (n *node[T]) set(val T) error {
	if !n.valid() {
		return ErrInvalidPosition
	}
	n.item = val
	return nil
}

// swapWith exchanges the positions of n and other, which may be in
// different lists.
func (n *node[T]) swapWith(other *node[T]) {
	switch {
	case n == other:
		return
	case n.next == other:
		n.swapWithNext()
	case n.prev == other:
		other.swapWithNext()
	default:
		n.swapWithDisjoint(other)
	}
}

// swapWithNext handles the adjacent case:
//
//	... <-> before <-> n <-> other <-> after <-> ...
func (n *node[T]) swapWithNext() {
	other := n.next

	n.prev.next = other
	other.next.prev = n
	other.prev = n.prev
	n.prev = other
	n.next = other.next
	other.next = n
}

// swapWithDisjoint handles the general case, where n and other are
// not neighbors.
func (n *node[T]) swapWithDisjoint(other *node[T]) {
	n.prev.next = other
	n.next.prev = other
	other.prev.next = n
	other.next.prev = n

	n.prev, other.prev = other.prev, n.prev
	n.next, other.next = other.next, n.next
}

// moveBefore unlinks n and relinks it immediately before other, which
// may be in a different list.
func (n *node[T]) moveBefore(other *node[T]) {
	if n == other || n.next == other {
		return
	}

	n.unlink()
	n.linkBefore(other)
}

func (n *node[T]) unlink() {
	n.prev.next = n.next
	n.next.prev = n.prev
}

func (n *node[T]) linkBefore(at *node[T]) {
	n.prev = at.prev
	n.next = at
	at.prev.next = n
	at.prev = n
}
