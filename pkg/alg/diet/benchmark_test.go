package diet

import (
	"testing"
)

// Benchmark constants.
const (
	benchSpanCount = 2000
	benchStride    = 4
)

// stripedSet builds benchSpanCount disjoint two-rune spans.
func stripedSet(offset rune) *Tree {
	var tr *Tree
	for i := range benchSpanCount {
		lo := offset + rune(i*benchStride)
		tr = AddSpan(tr, lo, lo+1)
	}

	return tr
}

// BenchmarkAddSpan benchmarks building a striped set span by span.
func BenchmarkAddSpan(b *testing.B) {
	for range b.N {
		stripedSet(0)
	}
}

// BenchmarkContains benchmarks membership probes across the stripes.
func BenchmarkContains(b *testing.B) {
	tr := stripedSet(0)

	b.ResetTimer()

	for i := range b.N {
		Contains(tr, rune(i%(benchSpanCount*benchStride)))
	}
}

// BenchmarkUnion benchmarks merging two interleaved striped sets, the
// worst case for the coalescing merge.
func BenchmarkUnion(b *testing.B) {
	x := stripedSet(0)
	y := stripedSet(2)

	b.ResetTimer()

	for range b.N {
		Union(x, y)
	}
}

// BenchmarkDifference benchmarks subtracting interleaved stripes.
func BenchmarkDifference(b *testing.B) {
	x := stripedSet(0)
	y := stripedSet(1)

	b.ResetTimer()

	for range b.N {
		Difference(x, y)
	}
}
