// Package safeconv provides safe numeric conversion functions that panic on
// domain violations.
package safeconv

import "unicode/utf8"

// MustRuneToUint64 converts a rune to uint64, panics on negative input.
// Use only where the rune is known to be a valid code point.
func MustRuneToUint64(r rune) uint64 {
	if r < 0 {
		panic("safeconv: negative rune")
	}

	return uint64(r)
}

// MustIntToRune converts an int to a rune, panics outside the Unicode
// code space. Use only when out-of-range values are logically impossible.
func MustIntToRune(v int) rune {
	if v < 0 || v > utf8.MaxRune {
		panic("safeconv: int outside the Unicode code space")
	}

	return rune(v)
}
