package avltree

import "iter"

// cursor streams a tree's elements in order without call recursion, so
// traversal depth is bounded by tree height rather than element count.
// When desc is set the stream runs largest-first.
type cursor[T any] struct {
	stack []*Tree[T]
	desc  bool
}

func newCursor[T any](t *Tree[T], desc bool) cursor[T] {
	c := cursor[T]{stack: make([]*Tree[T], 0, t.Height()), desc: desc}
	c.push(t)

	return c
}

// push descends along the leading spine, stacking every node passed.
func (c *cursor[T]) push(t *Tree[T]) {
	for t != nil {
		c.stack = append(c.stack, t)

		if c.desc {
			t = t.right
		} else {
			t = t.left
		}
	}
}

func (c *cursor[T]) valid() bool {
	return len(c.stack) > 0
}

func (c *cursor[T]) current() T {
	return c.stack[len(c.stack)-1].value
}

func (c *cursor[T]) advance() {
	n := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]

	if c.desc {
		c.push(n.left)
	} else {
		c.push(n.right)
	}
}

// Count returns the number of elements, visiting every node with an
// explicit auxiliary stack.
func (t *Tree[T]) Count() int {
	if t == nil {
		return 0
	}

	count := 0
	stack := []*Tree[T]{t}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++

		if n.left != nil {
			stack = append(stack, n.left)
		}

		if n.right != nil {
			stack = append(stack, n.right)
		}
	}

	return count
}

// Iter calls fn for every element in ascending order.
func (t *Tree[T]) Iter(fn func(T)) {
	for c := newCursor(t, false); c.valid(); c.advance() {
		fn(c.current())
	}
}

// Exists reports whether pred holds for some element. It scans in
// ascending order and stops at the first match.
func (t *Tree[T]) Exists(pred func(T) bool) bool {
	for c := newCursor(t, false); c.valid(); c.advance() {
		if pred(c.current()) {
			return true
		}
	}

	return false
}

// Forall reports whether pred holds for every element. It stops at the
// first counterexample.
func (t *Tree[T]) Forall(pred func(T) bool) bool {
	for c := newCursor(t, false); c.valid(); c.advance() {
		if !pred(c.current()) {
			return false
		}
	}

	return true
}

// All returns a restartable in-order sequence of the elements.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := newCursor(t, false); c.valid(); c.advance() {
			if !yield(c.current()) {
				return
			}
		}
	}
}

// Fold reduces the elements in ascending order.
func Fold[T, A any](t *Tree[T], acc A, fn func(A, T) A) A {
	for c := newCursor(t, false); c.valid(); c.advance() {
		acc = fn(acc, c.current())
	}

	return acc
}

// FoldBack reduces the elements in descending order.
func FoldBack[T, A any](t *Tree[T], acc A, fn func(T, A) A) A {
	for c := newCursor(t, true); c.valid(); c.advance() {
		acc = fn(c.current(), acc)
	}

	return acc
}

// ToSlice returns the elements in ascending order.
func (t *Tree[T]) ToSlice() []T {
	out := make([]T, 0, t.Height()) // lower bound; grows as needed

	t.Iter(func(v T) {
		out = append(out, v)
	})

	return out
}

// FromSlice builds a tree by repeated insertion. Duplicates collapse.
func FromSlice[T any](xs []T, cmp CompareFunc[T]) *Tree[T] {
	var t *Tree[T]
	for _, v := range xs {
		t = Insert(t, v, cmp)
	}

	return t
}

// FromSeq builds a tree from any element sequence. Duplicates collapse.
func FromSeq[T any](seq iter.Seq[T], cmp CompareFunc[T]) *Tree[T] {
	var t *Tree[T]
	for v := range seq {
		t = Insert(t, v, cmp)
	}

	return t
}

// Compare defines a total order between two trees: simultaneous in-order
// traversal, first differing element decides, and a tree that is an exact
// prefix of a longer one sorts before it. The order is consistent with
// Equal and independent of tree shape.
func Compare[T any](a, b *Tree[T], cmp CompareFunc[T]) int {
	ca, cb := newCursor(a, false), newCursor(b, false)

	for ca.valid() && cb.valid() {
		if c := cmp(ca.current(), cb.current()); c != 0 {
			return c
		}

		ca.advance()
		cb.advance()
	}

	switch {
	case ca.valid():
		return 1
	case cb.valid():
		return -1
	default:
		return 0
	}
}

// Equal reports whether two trees hold the same elements, regardless of
// their shapes.
func Equal[T any](a, b *Tree[T], cmp CompareFunc[T]) bool {
	return Compare(a, b, cmp) == 0
}
