package avltree

// The combinators below are the building blocks of Split and of the set
// operations. Their ordering preconditions are the caller's
// responsibility; they are internal primitives, never validated at run
// time.

// Join combines left, v, and right into one balanced tree. Precondition:
// every element of left precedes v, which precedes every element of
// right. The two subtrees must each be balanced, but their heights may
// differ arbitrarily: Join descends the taller side until the gap is
// bounded, then restores balance with rotations on the way back up.
func Join[T any](v T, left, right *Tree[T]) *Tree[T] {
	switch {
	case left.Height() > right.Height()+1:
		return rebalanceRight(left.left, left.value, Join(v, left.right, right))
	case right.Height() > left.Height()+1:
		return rebalanceLeft(Join(v, left, right.left), right.value, right.right)
	default:
		return mk(left, v, right)
	}
}

// Balance is the combinator spelling of Join used by Split and the set
// operations: it produces a balanced tree of left ∪ {v} ∪ right under the
// same ordering precondition.
func Balance[T any](left, right *Tree[T], v T) *Tree[T] {
	return Join(v, left, right)
}

// Reroot merges two trees without a separating element. Precondition:
// every element of left precedes every element of right. The extremal
// element of the taller side becomes the new root.
func Reroot[T any](left, right *Tree[T]) *Tree[T] {
	if left.Height() >= right.Height() {
		if left == nil {
			return nil
		}

		v, rest, _ := left.TryExtractMax()

		return Join(v, rest, right)
	}

	v, rest, _ := right.TryExtractMin()

	return Join(v, left, rest)
}

// Split partitions t around pivot: a balanced tree of the elements
// strictly below, whether the pivot itself was present, and a balanced
// tree of the elements strictly above.
func Split[T any](t *Tree[T], pivot T, cmp CompareFunc[T]) (*Tree[T], bool, *Tree[T]) {
	if t == nil {
		return nil, false, nil
	}

	switch c := cmp(pivot, t.value); {
	case c < 0:
		below, present, above := Split(t.left, pivot, cmp)

		return below, present, Join(t.value, above, t.right)
	case c > 0:
		below, present, above := Split(t.right, pivot, cmp)

		return Join(t.value, t.left, below), present, above
	default:
		return t.left, true, t.right
	}
}

// Union returns a tree holding every element of a and b. It divides on
// the taller tree's root, splits the other tree there, and recombines
// through Join, which keeps the cost near O(m·log(n/m+1)) for sizes m<=n.
func Union[T any](a, b *Tree[T], cmp CompareFunc[T]) *Tree[T] {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}

	if a.height < b.height {
		a, b = b, a
	}

	below, _, above := Split(b, a.value, cmp)

	return Join(a.value, Union(a.left, below, cmp), Union(a.right, above, cmp))
}

// Intersect returns a tree holding the elements present in both a and b.
func Intersect[T any](a, b *Tree[T], cmp CompareFunc[T]) *Tree[T] {
	if a == nil || b == nil {
		return nil
	}

	if a.height < b.height {
		a, b = b, a
	}

	below, present, above := Split(b, a.value, cmp)
	left := Intersect(a.left, below, cmp)
	right := Intersect(a.right, above, cmp)

	if present {
		return Join(a.value, left, right)
	}

	return Reroot(left, right)
}

// Difference returns a tree holding the elements of a that are not in b.
func Difference[T any](a, b *Tree[T], cmp CompareFunc[T]) *Tree[T] {
	if a == nil || b == nil {
		return a
	}

	below, _, above := Split(a, b.value, cmp)

	return Reroot(Difference(below, b.left, cmp), Difference(above, b.right, cmp))
}

// IsSubset reports whether every element of a is an element of b.
func IsSubset[T any](a, b *Tree[T], cmp CompareFunc[T]) bool {
	return a.Forall(func(v T) bool {
		return Contains(b, v, cmp)
	})
}

// IsProperSubset reports whether a is a subset of b and b holds at least
// one element a does not.
func IsProperSubset[T any](a, b *Tree[T], cmp CompareFunc[T]) bool {
	return IsSubset(a, b, cmp) && b.Exists(func(v T) bool {
		return !Contains(a, v, cmp)
	})
}
