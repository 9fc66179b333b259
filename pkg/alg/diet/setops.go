package diet

import (
	"github.com/Sumatoshi-tech/lexfang/pkg/alg/avltree"
)

// spanCursor streams a tree's spans in ascending order over an explicit
// stack, so merge depth is bounded by tree height instead of span count.
type spanCursor struct {
	stack []*Tree
}

func newSpanCursor(t *Tree) spanCursor {
	c := spanCursor{stack: make([]*Tree, 0, t.Height())}
	c.push(t)

	return c
}

func (c *spanCursor) push(t *Tree) {
	for !t.IsEmpty() {
		c.stack = append(c.stack, t)
		t = t.Left()
	}
}

func (c *spanCursor) next() (Span, bool) {
	if len(c.stack) == 0 {
		return Span{}, false
	}

	n := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.push(n.Right())

	return n.Value(), true
}

// append flushes a span onto the high end of a result tree. Precondition:
// the span starts beyond every span already in the tree, with a gap.
func appendSpan(t *Tree, s Span) *Tree {
	return avltree.Join(s, t, nil)
}

// Union returns the set of runes present in either input. Both span
// streams are merged in ascending order through a coalescing accumulator,
// so the cost is linear in the number of spans.
func Union(a, b *Tree) *Tree {
	ca, cb := newSpanCursor(a), newSpanCursor(b)
	sa, okA := ca.next()
	sb, okB := cb.next()

	var (
		out     *Tree
		acc     Span
		haveAcc bool
	)

	take := func(s Span) {
		switch {
		case !haveAcc:
			acc, haveAcc = s, true
		case s.Lo <= acc.Hi+1:
			// Overlapping or adjacent: widen the accumulator.
			if s.Hi > acc.Hi {
				acc.Hi = s.Hi
			}
		default:
			// A real gap: the accumulator can no longer grow.
			out = appendSpan(out, acc)
			acc = s
		}
	}

	for okA || okB {
		if okA && (!okB || sa.Lo <= sb.Lo) {
			take(sa)
			sa, okA = ca.next()
		} else {
			take(sb)
			sb, okB = cb.next()
		}
	}

	if haveAcc {
		out = appendSpan(out, acc)
	}

	return out
}

// Intersect returns the set of runes present in both inputs.
func Intersect(a, b *Tree) *Tree {
	ca, cb := newSpanCursor(a), newSpanCursor(b)
	sa, okA := ca.next()
	sb, okB := cb.next()

	var out *Tree

	for okA && okB {
		lo := max(sa.Lo, sb.Lo)
		hi := min(sa.Hi, sb.Hi)

		if lo <= hi {
			out = appendSpan(out, Span{Lo: lo, Hi: hi})
		}

		// Advance whichever span ends first; the other may still
		// intersect the next span of the exhausted side.
		if sa.Hi <= sb.Hi {
			sa, okA = ca.next()
		} else {
			sb, okB = cb.next()
		}
	}

	return out
}

// Difference returns the set of runes present in a but not in b.
func Difference(a, b *Tree) *Tree {
	ca, cb := newSpanCursor(a), newSpanCursor(b)
	cur, okA := ca.next()
	sb, okB := cb.next()

	var out *Tree

	for okA {
		switch {
		case !okB || sb.Lo > cur.Hi:
			// Nothing left to subtract from this span.
			out = appendSpan(out, cur)
			cur, okA = ca.next()
		case sb.Hi < cur.Lo:
			sb, okB = cb.next()
		default:
			// Overlap: keep whatever of cur lies below sb, and continue
			// with whatever lies above it.
			if cur.Lo < sb.Lo {
				out = appendSpan(out, Span{Lo: cur.Lo, Hi: sb.Lo - 1})
			}

			if sb.Hi < cur.Hi {
				cur.Lo = sb.Hi + 1
				sb, okB = cb.next()
			} else {
				cur, okA = ca.next()
			}
		}
	}

	return out
}

// Compare defines a total order over sets: lexicographic on the maximal
// span sequences, first differing span decides, shorter prefix sorts
// first. Because span decompositions are unique, Compare returns zero
// exactly when the sets are equal.
func Compare(a, b *Tree) int {
	ca, cb := newSpanCursor(a), newSpanCursor(b)
	sa, okA := ca.next()
	sb, okB := cb.next()

	for okA && okB {
		if c := sa.Compare(sb); c != 0 {
			return c
		}

		sa, okA = ca.next()
		sb, okB = cb.next()
	}

	switch {
	case okA:
		return 1
	case okB:
		return -1
	default:
		return 0
	}
}

// Equal reports whether two trees denote the same set of runes.
func Equal(a, b *Tree) bool {
	return Compare(a, b) == 0
}
