// Package avltree implements a persistent (immutable) height-balanced
// search tree with set semantics. Every update returns a new root and
// leaves the input tree valid, sharing unaffected subtrees, so any tree
// may be read concurrently without locking.
//
// The element order is supplied per operation as a CompareFunc. Besides
// the usual set operations the package exports the merge combinators
// (Balance, Split, Join, Reroot) and the structural accessors (Left,
// Right, Value) needed to build specialized encodings on top, such as the
// interval tree in pkg/alg/diet.
package avltree

import "errors"

// ErrEmptyCollection is returned by extremal queries on an empty tree.
// It signals a caller invariant violation: check IsEmpty first.
var ErrEmptyCollection = errors.New("avltree: empty collection")

// CompareFunc is a total-order comparator. It returns a negative number
// when a sorts before b, zero when they are equal, and a positive number
// when a sorts after b.
type CompareFunc[T any] func(a, b T) int

// Tree is an immutable AVL tree node. A nil *Tree is the empty tree.
// Nodes are never mutated after construction.
type Tree[T any] struct {
	left   *Tree[T]
	right  *Tree[T]
	value  T
	height uint
}

// Singleton returns a tree holding exactly one element.
func Singleton[T any](v T) *Tree[T] {
	return &Tree[T]{value: v, height: 1}
}

// mk builds a node from two subtrees whose heights differ by at most one.
func mk[T any](left *Tree[T], v T, right *Tree[T]) *Tree[T] {
	h := left.Height()
	if rh := right.Height(); rh > h {
		h = rh
	}

	return &Tree[T]{left: left, right: right, value: v, height: h + 1}
}

// Height returns the cached height of the tree: zero for the empty tree,
// otherwise 1 + max(height(left), height(right)).
func (t *Tree[T]) Height() uint {
	if t == nil {
		return 0
	}

	return t.height
}

// IsEmpty reports whether the tree holds no elements.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil
}

// Left returns the left subtree, or the empty tree for an empty input.
func (t *Tree[T]) Left() *Tree[T] {
	if t == nil {
		return nil
	}

	return t.left
}

// Right returns the right subtree, or the empty tree for an empty input.
func (t *Tree[T]) Right() *Tree[T] {
	if t == nil {
		return nil
	}

	return t.right
}

// Value returns the element at the root. For an empty tree it returns the
// zero value; callers descending a tree must check IsEmpty first.
func (t *Tree[T]) Value() T {
	if t == nil {
		var zero T

		return zero
	}

	return t.value
}

// rebalanceLeft rebuilds a node whose left subtree may have grown taller
// than the right by exactly two, restoring balance with a single or double
// rotation. Precondition: the height difference is at most two.
func rebalanceLeft[T any](left *Tree[T], v T, right *Tree[T]) *Tree[T] {
	if left.Height() <= right.Height()+1 {
		return mk(left, v, right)
	}

	// left is exactly two taller, so it is non-empty.
	if left.left.Height() >= left.right.Height() {
		// Single rotation: lift the left child.
		return mk(left.left, left.value, mk(left.right, v, right))
	}

	// Double rotation: the heavy side points inward, lift left.right.
	pivot := left.right

	return mk(mk(left.left, left.value, pivot.left), pivot.value, mk(pivot.right, v, right))
}

// rebalanceRight is the mirror image of rebalanceLeft: the right subtree
// may be taller than the left by exactly two.
func rebalanceRight[T any](left *Tree[T], v T, right *Tree[T]) *Tree[T] {
	if right.Height() <= left.Height()+1 {
		return mk(left, v, right)
	}

	if right.right.Height() >= right.left.Height() {
		return mk(mk(left, v, right.left), right.value, right.right)
	}

	pivot := right.left

	return mk(mk(left, v, pivot.left), pivot.value, mk(pivot.right, right.value, right.right))
}

// Contains reports whether v is an element of t.
func Contains[T any](t *Tree[T], v T, cmp CompareFunc[T]) bool {
	for t != nil {
		switch c := cmp(v, t.value); {
		case c < 0:
			t = t.left
		case c > 0:
			t = t.right
		default:
			return true
		}
	}

	return false
}

// Insert returns a tree containing v and every element of t. Inserting an
// element that is already present returns t unchanged.
func Insert[T any](t *Tree[T], v T, cmp CompareFunc[T]) *Tree[T] {
	if t == nil {
		return Singleton(v)
	}

	switch c := cmp(v, t.value); {
	case c < 0:
		left := Insert(t.left, v, cmp)
		if left == t.left {
			return t
		}

		return rebalanceLeft(left, t.value, t.right)
	case c > 0:
		right := Insert(t.right, v, cmp)
		if right == t.right {
			return t
		}

		return rebalanceRight(t.left, t.value, right)
	default:
		return t
	}
}

// Delete returns a tree containing every element of t except v. Deleting
// an absent element returns t unchanged.
func Delete[T any](t *Tree[T], v T, cmp CompareFunc[T]) *Tree[T] {
	if t == nil {
		return nil
	}

	switch c := cmp(v, t.value); {
	case c < 0:
		left := Delete(t.left, v, cmp)
		if left == t.left {
			return t
		}

		return rebalanceRight(left, t.value, t.right)
	case c > 0:
		right := Delete(t.right, v, cmp)
		if right == t.right {
			return t
		}

		return rebalanceLeft(t.left, t.value, right)
	default:
		return glue(t.left, t.right)
	}
}

// glue joins two subtrees of a deleted node. Their heights differ by at
// most one; the in-order predecessor becomes the new root.
func glue[T any](left, right *Tree[T]) *Tree[T] {
	switch {
	case left == nil:
		return right
	case right == nil:
		return left
	}

	v, rest, _ := left.TryExtractMax()

	return rebalanceRight(rest, v, right)
}

// Min returns the smallest element of t.
// It returns ErrEmptyCollection for the empty tree.
func (t *Tree[T]) Min() (T, error) {
	if t == nil {
		var zero T

		return zero, ErrEmptyCollection
	}

	for t.left != nil {
		t = t.left
	}

	return t.value, nil
}

// Max returns the largest element of t.
// It returns ErrEmptyCollection for the empty tree.
func (t *Tree[T]) Max() (T, error) {
	if t == nil {
		var zero T

		return zero, ErrEmptyCollection
	}

	for t.right != nil {
		t = t.right
	}

	return t.value, nil
}

// ExtractMin removes the smallest element, rebalancing on the way back up
// in a single traversal, and returns it with the remaining tree.
// It returns ErrEmptyCollection for the empty tree.
func (t *Tree[T]) ExtractMin() (T, *Tree[T], error) {
	if t == nil {
		var zero T

		return zero, nil, ErrEmptyCollection
	}

	v, rest := extractMin(t)

	return v, rest, nil
}

// ExtractMax removes the largest element and returns it with the
// remaining tree. It returns ErrEmptyCollection for the empty tree.
func (t *Tree[T]) ExtractMax() (T, *Tree[T], error) {
	if t == nil {
		var zero T

		return zero, nil, ErrEmptyCollection
	}

	v, rest := extractMax(t)

	return v, rest, nil
}

// TryExtractMin is ExtractMin with an ok flag instead of an error.
func (t *Tree[T]) TryExtractMin() (T, *Tree[T], bool) {
	if t == nil {
		var zero T

		return zero, nil, false
	}

	v, rest := extractMin(t)

	return v, rest, true
}

// TryExtractMax is ExtractMax with an ok flag instead of an error.
func (t *Tree[T]) TryExtractMax() (T, *Tree[T], bool) {
	if t == nil {
		var zero T

		return zero, nil, false
	}

	v, rest := extractMax(t)

	return v, rest, true
}

func extractMin[T any](t *Tree[T]) (T, *Tree[T]) {
	if t.left == nil {
		return t.value, t.right
	}

	v, left := extractMin(t.left)

	return v, rebalanceRight(left, t.value, t.right)
}

func extractMax[T any](t *Tree[T]) (T, *Tree[T]) {
	if t.right == nil {
		return t.value, t.left
	}

	v, right := extractMax(t.right)

	return v, rebalanceLeft(t.left, t.value, right)
}
