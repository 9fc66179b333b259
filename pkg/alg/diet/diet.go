// Package diet implements a Discrete Interval Encoding Tree over closed
// rune intervals: a persistent balanced tree (pkg/alg/avltree) whose nodes
// hold maximal, pairwise-disjoint spans in ascending order. Sets of
// characters with long contiguous runs — character classes like [a-zA-Z_]
// — are stored in space proportional to the number of spans, and the set
// operations run in time proportional to span count rather than
// character count.
//
// The maximality invariant is strict: consecutive spans always leave a
// gap of at least one unrepresented rune, so a set's span decomposition
// is unique and two trees denote the same set exactly when their span
// sequences match.
//
// This package builds only on the tree core's documented primitives
// (structural accessors, Join, Balance, Reroot, extraction); it never
// touches rotation machinery.
package diet

import (
	"github.com/Sumatoshi-tech/lexfang/pkg/alg/avltree"
)

// Span is a closed interval of runes: the set {Lo, ..., Hi}, Lo <= Hi.
type Span struct {
	Lo rune
	Hi rune
}

// Count returns the number of runes the span covers.
func (s Span) Count() int {
	return int(s.Hi-s.Lo) + 1
}

// Compare orders spans lexicographically by (Lo, Hi).
func (s Span) Compare(o Span) int {
	switch {
	case s.Lo != o.Lo:
		if s.Lo < o.Lo {
			return -1
		}

		return 1
	case s.Hi != o.Hi:
		if s.Hi < o.Hi {
			return -1
		}

		return 1
	default:
		return 0
	}
}

// Tree is an interval tree; a nil *Tree is the empty set.
type Tree = avltree.Tree[Span]

// OfSpan builds a single-span tree covering [lo, hi]. Following the
// range-operator convention of the surrounding toolchain, a degenerate
// span with lo >= hi yields the empty tree — lo == hi does not produce a
// one-rune singleton. Use Add to insert single runes.
func OfSpan(lo, hi rune) *Tree {
	if lo >= hi {
		return nil
	}

	return avltree.Singleton(Span{Lo: lo, Hi: hi})
}

// Contains reports whether v is a member of the set.
func Contains(t *Tree, v rune) bool {
	for !t.IsEmpty() {
		s := t.Value()

		switch {
		case v < s.Lo:
			t = t.Left()
		case v > s.Hi:
			t = t.Right()
		default:
			return true
		}
	}

	return false
}

// Add returns a tree with v inserted. Adding a member is a no-op that
// returns the input tree. A rune adjacent to an existing span extends it,
// coalescing with the neighboring span when the gap between them closes.
func Add(t *Tree, v rune) *Tree {
	if t.IsEmpty() {
		return avltree.Singleton(Span{Lo: v, Hi: v})
	}

	s := t.Value()

	switch {
	case v >= s.Lo && v <= s.Hi:
		return t
	case v < s.Lo-1:
		return avltree.Balance(Add(t.Left(), v), t.Right(), s)
	case v > s.Hi+1:
		return avltree.Balance(t.Left(), Add(t.Right(), v), s)
	case v == s.Lo-1:
		lo, left := absorbBelow(v, t.Left())

		return avltree.Join(Span{Lo: lo, Hi: s.Hi}, left, t.Right())
	default: // v == s.Hi+1
		hi, right := absorbAbove(v, t.Right())

		return avltree.Join(Span{Lo: s.Lo, Hi: hi}, t.Left(), right)
	}
}

// absorbBelow extends a span downward to lo, coalescing with the largest
// span of t when the extension makes the two adjacent.
func absorbBelow(lo rune, t *Tree) (rune, *Tree) {
	if s, rest, ok := t.TryExtractMax(); ok && s.Hi+1 == lo {
		return s.Lo, rest
	}

	return lo, t
}

// absorbAbove is the mirror of absorbBelow for upward extensions.
func absorbAbove(hi rune, t *Tree) (rune, *Tree) {
	if s, rest, ok := t.TryExtractMin(); ok && s.Lo-1 == hi {
		return s.Hi, rest
	}

	return hi, t
}

// AddSpan returns a tree with every rune of [lo, hi] inserted, coalescing
// all spans the range overlaps or touches. An inverted range (hi < lo) is
// a no-op.
func AddSpan(t *Tree, lo, hi rune) *Tree {
	if hi < lo {
		return t
	}

	return addSpan(t, Span{Lo: lo, Hi: hi})
}

func addSpan(t *Tree, s Span) *Tree {
	if t.IsEmpty() {
		return avltree.Singleton(s)
	}

	cur := t.Value()

	switch {
	case s.Hi < cur.Lo-1:
		return avltree.Balance(addSpan(t.Left(), s), t.Right(), cur)
	case s.Lo > cur.Hi+1:
		return avltree.Balance(t.Left(), addSpan(t.Right(), s), cur)
	default:
		// The range overlaps or touches the root span: widen to cover
		// both, then sweep each subtree for spans the widened bounds
		// reach.
		lo, hi := s.Lo, s.Hi
		if cur.Lo < lo {
			lo = cur.Lo
		}

		if cur.Hi > hi {
			hi = cur.Hi
		}

		lo, left := findDelLeft(lo, t.Left())
		hi, right := findDelRight(hi, t.Right())

		return avltree.Join(Span{Lo: lo, Hi: hi}, left, right)
	}
}

// findDelLeft deletes every span of t that overlaps or touches a range
// with low bound lo, returning the final low bound and the remainder.
func findDelLeft(lo rune, t *Tree) (rune, *Tree) {
	for {
		s, rest, ok := t.TryExtractMax()
		if !ok || s.Hi+1 < lo {
			return lo, t
		}

		if s.Lo < lo {
			lo = s.Lo
		}

		t = rest
	}
}

// findDelRight is the mirror of findDelLeft for the high bound.
func findDelRight(hi rune, t *Tree) (rune, *Tree) {
	for {
		s, rest, ok := t.TryExtractMin()
		if !ok || s.Lo-1 > hi {
			return hi, t
		}

		if s.Hi > hi {
			hi = s.Hi
		}

		t = rest
	}
}

// Remove returns a tree with v removed. Removing a non-member is a no-op
// that returns the input tree. Removing an interior rune splits the
// owning span in two.
func Remove(t *Tree, v rune) *Tree {
	if t.IsEmpty() {
		return t
	}

	s := t.Value()

	switch {
	case v < s.Lo:
		left := Remove(t.Left(), v)
		if left == t.Left() {
			return t
		}

		return avltree.Balance(left, t.Right(), s)
	case v > s.Hi:
		right := Remove(t.Right(), v)
		if right == t.Right() {
			return t
		}

		return avltree.Balance(t.Left(), right, s)
	case s.Lo == s.Hi:
		return avltree.Reroot(t.Left(), t.Right())
	case v == s.Lo:
		return avltree.Join(Span{Lo: v + 1, Hi: s.Hi}, t.Left(), t.Right())
	case v == s.Hi:
		return avltree.Join(Span{Lo: s.Lo, Hi: v - 1}, t.Left(), t.Right())
	default:
		// Interior removal: keep the lower remainder in place and
		// re-insert the upper remainder as a fresh range.
		shrunk := avltree.Join(Span{Lo: s.Lo, Hi: v - 1}, t.Left(), t.Right())

		return addSpan(shrunk, Span{Lo: v + 1, Hi: s.Hi})
	}
}

// Split partitions the set around x: the members strictly below, whether
// x itself is a member, and the members strictly above. A span holding x
// in its interior is divided across both sides.
func Split(t *Tree, x rune) (*Tree, bool, *Tree) {
	if t.IsEmpty() {
		return nil, false, nil
	}

	s := t.Value()

	switch {
	case x < s.Lo:
		below, present, above := Split(t.Left(), x)

		return below, present, avltree.Balance(above, t.Right(), s)
	case x > s.Hi:
		below, present, above := Split(t.Right(), x)

		return avltree.Balance(t.Left(), below, s), present, above
	default:
		below, above := t.Left(), t.Right()
		if x > s.Lo {
			below = addSpan(below, Span{Lo: s.Lo, Hi: x - 1})
		}

		if x < s.Hi {
			above = addSpan(above, Span{Lo: x + 1, Hi: s.Hi})
		}

		return below, true, above
	}
}

// Count returns the number of runes in the set. Cost is proportional to
// the span count, not the rune count.
func Count(t *Tree) int {
	return avltree.Fold(t, 0, func(acc int, s Span) int {
		return acc + s.Count()
	})
}

// SpanCount returns the number of maximal spans in the set.
func SpanCount(t *Tree) int {
	return t.Count()
}

// Min returns the smallest member.
// It returns avltree.ErrEmptyCollection for the empty set.
func Min(t *Tree) (rune, error) {
	s, err := t.Min()
	if err != nil {
		return 0, err
	}

	return s.Lo, nil
}

// Max returns the largest member.
// It returns avltree.ErrEmptyCollection for the empty set.
func Max(t *Tree) (rune, error) {
	s, err := t.Max()
	if err != nil {
		return 0, err
	}

	return s.Hi, nil
}
