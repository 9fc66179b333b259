package diet

import (
	"iter"

	"github.com/Sumatoshi-tech/lexfang/pkg/alg/avltree"
)

// The traversals below operate at rune granularity even though storage is
// per span: each span expands to its individual runes for the callback.

// Iter calls fn for every member in ascending order.
func Iter(t *Tree, fn func(rune)) {
	t.Iter(func(s Span) {
		for v := s.Lo; v <= s.Hi; v++ {
			fn(v)
		}
	})
}

// Fold reduces the members in ascending order.
func Fold[A any](t *Tree, acc A, fn func(A, rune) A) A {
	return avltree.Fold(t, acc, func(acc A, s Span) A {
		for v := s.Lo; v <= s.Hi; v++ {
			acc = fn(acc, v)
		}

		return acc
	})
}

// FoldBack reduces the members in descending order.
func FoldBack[A any](t *Tree, acc A, fn func(rune, A) A) A {
	return avltree.FoldBack(t, acc, func(s Span, acc A) A {
		for v := s.Hi; v >= s.Lo; v-- {
			acc = fn(v, acc)
		}

		return acc
	})
}

// Exists reports whether pred holds for some member, scanning in
// ascending order and stopping at the first match.
func Exists(t *Tree, pred func(rune) bool) bool {
	return t.Exists(func(s Span) bool {
		for v := s.Lo; v <= s.Hi; v++ {
			if pred(v) {
				return true
			}
		}

		return false
	})
}

// Forall reports whether pred holds for every member, stopping at the
// first counterexample.
func Forall(t *Tree, pred func(rune) bool) bool {
	return t.Forall(func(s Span) bool {
		for v := s.Lo; v <= s.Hi; v++ {
			if !pred(v) {
				return false
			}
		}

		return true
	})
}

// Runes returns a lazy, restartable ascending sequence of the members,
// produced span by span.
func Runes(t *Tree) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		c := newSpanCursor(t)
		for s, ok := c.next(); ok; s, ok = c.next() {
			for v := s.Lo; v <= s.Hi; v++ {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Spans returns the maximal span decomposition in ascending order, for
// consumers that want interval granularity (e.g. compact transition
// tables).
func Spans(t *Tree) iter.Seq[Span] {
	return t.All()
}
