// Package charset provides an immutable character-set value built on the
// interval tree in pkg/alg/diet. A Set is cheap to copy, safe to share
// across goroutines, and totally ordered with an equality-consistent
// hash, so automaton-construction code can use it directly as a map key
// when deduplicating states by their outgoing character-class partitions.
//
// Every "mutating" method returns a new Set; the receiver is never
// modified. The zero value is the empty set.
package charset

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/Sumatoshi-tech/lexfang/pkg/alg/avltree"
	"github.com/Sumatoshi-tech/lexfang/pkg/alg/diet"
	"github.com/Sumatoshi-tech/lexfang/pkg/safeconv"
)

// ErrEmptySet is returned by extremal queries on an empty set.
var ErrEmptySet = avltree.ErrEmptyCollection

// FNV-1a constants for Hash.
const (
	fnvOffset = 14695981039346656037
	fnvPrime  = 1099511628211
)

// Set is an immutable set of runes. The zero value is the empty set.
type Set struct {
	tree *diet.Tree
}

// Empty returns the empty set.
func Empty() Set {
	return Set{}
}

// FromChar returns the singleton set {r}.
func FromChar(r rune) Set {
	return Set{tree: diet.Add(nil, r)}
}

// FromRange returns the set covering the closed range [lo, hi]. Per the
// range-operator convention documented in pkg/alg/diet, lo >= hi —
// including equal bounds — yields the empty set; use FromChar for
// singletons.
func FromRange(lo, hi rune) Set {
	return Set{tree: diet.OfSpan(lo, hi)}
}

// FromRunes returns the set of all runes in rs.
func FromRunes(rs []rune) Set {
	var t *diet.Tree
	for _, r := range rs {
		t = diet.Add(t, r)
	}

	return Set{tree: t}
}

// FromString returns the set of all runes appearing in s.
func FromString(s string) Set {
	var t *diet.Tree
	for _, r := range s {
		t = diet.Add(t, r)
	}

	return Set{tree: t}
}

// FromSeq returns the set of all runes produced by seq.
func FromSeq(seq iter.Seq[rune]) Set {
	var t *diet.Tree
	for r := range seq {
		t = diet.Add(t, r)
	}

	return Set{tree: t}
}

// IsEmpty reports whether the set has no members.
func (s Set) IsEmpty() bool {
	return s.tree.IsEmpty()
}

// Count returns the number of runes in the set. Cost is proportional to
// the interval count.
func (s Set) Count() int {
	return diet.Count(s.tree)
}

// SpanCount returns the number of maximal intervals in the set.
func (s Set) SpanCount() int {
	return diet.SpanCount(s.tree)
}

// Contains reports whether r is a member.
func (s Set) Contains(r rune) bool {
	return diet.Contains(s.tree, r)
}

// Min returns the smallest member, or ErrEmptySet.
func (s Set) Min() (rune, error) {
	return diet.Min(s.tree)
}

// Max returns the largest member, or ErrEmptySet.
func (s Set) Max() (rune, error) {
	return diet.Max(s.tree)
}

// Add returns the set with r included.
func (s Set) Add(r rune) Set {
	return Set{tree: diet.Add(s.tree, r)}
}

// AddRange returns the set with every rune of the closed range [lo, hi]
// included. An inverted range is a no-op.
func (s Set) AddRange(lo, hi rune) Set {
	return Set{tree: diet.AddSpan(s.tree, lo, hi)}
}

// Remove returns the set with r excluded.
func (s Set) Remove(r rune) Set {
	return Set{tree: diet.Remove(s.tree, r)}
}

// Union returns the set of runes in either s or o.
func (s Set) Union(o Set) Set {
	return Set{tree: diet.Union(s.tree, o.tree)}
}

// Intersect returns the set of runes in both s and o.
func (s Set) Intersect(o Set) Set {
	return Set{tree: diet.Intersect(s.tree, o.tree)}
}

// Difference returns the set of runes in s but not in o.
func (s Set) Difference(o Set) Set {
	return Set{tree: diet.Difference(s.tree, o.tree)}
}

// IsSubsetOf reports whether every member of s is a member of o.
func (s Set) IsSubsetOf(o Set) bool {
	return s.Difference(o).IsEmpty()
}

// IsProperSubsetOf reports whether s is a subset of o and o has at least
// one member s does not.
func (s Set) IsProperSubsetOf(o Set) bool {
	return s.IsSubsetOf(o) && s.Count() < o.Count()
}

// Equal reports whether the two sets hold the same runes. Equality is
// structural on the canonical interval decomposition, never on tree
// shape or identity.
func (s Set) Equal(o Set) bool {
	return diet.Equal(s.tree, o.tree)
}

// Compare defines a total order consistent with Equal: lexicographic
// over the sorted interval sequences, shorter prefix first.
func (s Set) Compare(o Set) int {
	return diet.Compare(s.tree, o.tree)
}

// Hash returns a hash that agrees with Equal: a pure FNV-1a function of
// the canonical interval sequence.
func (s Set) Hash() uint64 {
	h := uint64(fnvOffset)

	mix := func(v uint64) {
		h ^= v
		h *= fnvPrime
	}

	for sp := range diet.Spans(s.tree) {
		mix(safeconv.MustRuneToUint64(sp.Lo))
		mix(safeconv.MustRuneToUint64(sp.Hi))
	}

	return h
}

// All returns a lazy ascending sequence of the members.
func (s Set) All() iter.Seq[rune] {
	return diet.Runes(s.tree)
}

// Spans returns the maximal interval decomposition in ascending order,
// for callers that consume intervals rather than individual runes.
func (s Set) Spans() iter.Seq[diet.Span] {
	return diet.Spans(s.tree)
}

// Fold reduces the members of s in ascending order.
func Fold[A any](s Set, acc A, fn func(A, rune) A) A {
	return diet.Fold(s.tree, acc, fn)
}

// FoldBack reduces the members of s in descending order.
func FoldBack[A any](s Set, acc A, fn func(rune, A) A) A {
	return diet.FoldBack(s.tree, acc, fn)
}

// String renders the set in character-class notation, e.g. [a-z0-9_].
func (s Set) String() string {
	var b strings.Builder

	b.WriteByte('[')

	for sp := range diet.Spans(s.tree) {
		b.WriteString(renderRune(sp.Lo))

		if sp.Hi != sp.Lo {
			if sp.Hi != sp.Lo+1 {
				b.WriteByte('-')
			}

			b.WriteString(renderRune(sp.Hi))
		}
	}

	b.WriteByte(']')

	return b.String()
}

func renderRune(r rune) string {
	switch r {
	case '[', ']', '-', '\\', '^':
		return `\` + string(r)
	}

	if strconv.IsPrint(r) && r > ' ' {
		return string(r)
	}

	return fmt.Sprintf(`\u{%04X}`, r)
}
