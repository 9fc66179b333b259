package avltree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intsUpTo(n int) *Tree[int] {
	var tr *Tree[int]
	for v := range n {
		tr = Insert(tr, v, intCmp)
	}

	return tr
}

func shifted(tr *Tree[int], by int) *Tree[int] {
	var out *Tree[int]

	tr.Iter(func(v int) {
		out = Insert(out, v+by, intCmp)
	})

	return out
}

func TestJoin_ArbitraryHeightGap(t *testing.T) {
	t.Parallel()

	left := intsUpTo(300)           // 0..299
	right := shifted(intsUpTo(4), 400) // 400..403

	joined := Join(350, left, right)

	checkInvariants(t, joined)
	checkOrdered(t, joined)
	assert.Equal(t, 305, joined.Count())
	assert.True(t, Contains(joined, 350, intCmp))

	// Mirror case: tiny left, tall right.
	joined = Join(-1, shifted(intsUpTo(3), -10), shifted(intsUpTo(300), 100))
	checkInvariants(t, joined)
	checkOrdered(t, joined)
}

func TestJoin_EmptySides(t *testing.T) {
	t.Parallel()

	joined := Join(5, nil, nil)
	assert.Equal(t, []int{5}, joined.ToSlice())

	joined = Join(5, intsUpTo(3), nil)
	checkInvariants(t, joined)
	assert.Equal(t, []int{0, 1, 2, 5}, joined.ToSlice())
}

func TestBalance_MatchesJoin(t *testing.T) {
	t.Parallel()

	left := intsUpTo(50)
	right := shifted(intsUpTo(200), 100)

	balanced := Balance(left, right, 75)

	checkInvariants(t, balanced)
	checkOrdered(t, balanced)
	assert.Equal(t, 251, balanced.Count())
}

func TestReroot(t *testing.T) {
	t.Parallel()

	left := intsUpTo(100)
	right := shifted(intsUpTo(10), 500)

	merged := Reroot(left, right)

	checkInvariants(t, merged)
	checkOrdered(t, merged)
	assert.Equal(t, 110, merged.Count())

	assert.True(t, Reroot[int](nil, nil).IsEmpty())
	assert.Equal(t, 100, Reroot(left, nil).Count())
	assert.Equal(t, 10, Reroot(nil, right).Count())
}

func TestSplit(t *testing.T) {
	t.Parallel()

	tr := intsUpTo(100)

	below, present, above := Split(tr, 40, intCmp)

	assert.True(t, present)
	checkInvariants(t, below)
	checkInvariants(t, above)
	assert.Equal(t, 40, below.Count())
	assert.Equal(t, 59, above.Count())
	assert.True(t, below.Forall(func(v int) bool { return v < 40 }))
	assert.True(t, above.Forall(func(v int) bool { return v > 40 }))
}

func TestSplit_AbsentPivot(t *testing.T) {
	t.Parallel()

	tr := FromSlice([]int{10, 20, 30}, intCmp)

	below, present, above := Split(tr, 25, intCmp)

	assert.False(t, present)
	assert.Equal(t, []int{10, 20}, below.ToSlice())
	assert.Equal(t, []int{30}, above.ToSlice())
}

func TestUnion(t *testing.T) {
	t.Parallel()

	a := FromSlice([]int{1, 3, 5, 7}, intCmp)
	b := FromSlice([]int{2, 3, 6, 7, 9}, intCmp)

	u := Union(a, b, intCmp)

	checkInvariants(t, u)
	assert.Equal(t, []int{1, 2, 3, 5, 6, 7, 9}, u.ToSlice())

	// Commutative.
	assert.True(t, Equal(u, Union(b, a, intCmp), intCmp))

	// Identity.
	assert.Same(t, a, Union(a, nil, intCmp))
	assert.Same(t, b, Union(nil, b, intCmp))
}

func TestIntersect(t *testing.T) {
	t.Parallel()

	a := FromSlice([]int{1, 3, 5, 7, 9}, intCmp)
	b := FromSlice([]int{3, 4, 7, 10}, intCmp)

	i := Intersect(a, b, intCmp)

	checkInvariants(t, i)
	assert.Equal(t, []int{3, 7}, i.ToSlice())
	assert.True(t, Equal(i, Intersect(b, a, intCmp), intCmp))

	assert.True(t, Intersect(a, nil, intCmp).IsEmpty())
}

func TestDifference(t *testing.T) {
	t.Parallel()

	a := FromSlice([]int{1, 2, 3, 4, 5}, intCmp)
	b := FromSlice([]int{2, 4, 6}, intCmp)

	d := Difference(a, b, intCmp)

	checkInvariants(t, d)
	assert.Equal(t, []int{1, 3, 5}, d.ToSlice())

	assert.True(t, Difference(a, a, intCmp).IsEmpty())
	assert.Same(t, a, Difference(a, nil, intCmp))
	assert.True(t, Difference(nil, b, intCmp).IsEmpty())
}

func TestSetAlgebraLaws_Random(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(stressSeed + 1))

	randomTree := func(n, max int) *Tree[int] {
		var tr *Tree[int]
		for range n {
			tr = Insert(tr, rng.Intn(max), intCmp)
		}

		return tr
	}

	for range 25 {
		a := randomTree(200, 300)
		b := randomTree(150, 300)

		u := Union(a, b, intCmp)
		i := Intersect(a, b, intCmp)

		checkInvariants(t, u)
		checkInvariants(t, i)

		// Inclusion-exclusion on cardinalities.
		require.Equal(t, a.Count()+b.Count(), u.Count()+i.Count())

		// Absorption: a ∪ (a ∩ b) == a.
		require.True(t, Equal(a, Union(a, i, intCmp), intCmp))

		// Membership distributes over union.
		for v := range 300 {
			inU := Contains(u, v, intCmp)
			require.Equal(t, Contains(a, v, intCmp) || Contains(b, v, intCmp), inU)
		}

		// Difference disjoint from subtrahend.
		d := Difference(a, b, intCmp)
		require.True(t, Intersect(d, b, intCmp).IsEmpty())
	}
}

func TestIsSubset(t *testing.T) {
	t.Parallel()

	a := FromSlice([]int{2, 4}, intCmp)
	b := FromSlice([]int{1, 2, 3, 4}, intCmp)

	assert.True(t, IsSubset(a, b, intCmp))
	assert.False(t, IsSubset(b, a, intCmp))
	assert.True(t, IsSubset(a, a, intCmp))

	assert.True(t, IsProperSubset(a, b, intCmp))
	assert.False(t, IsProperSubset(a, a, intCmp))
	assert.True(t, IsSubset[int](nil, a, intCmp))
	assert.True(t, IsProperSubset[int](nil, a, intCmp))
}
