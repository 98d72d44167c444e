// File: compare.go
// Title: Ordering, Equality, and Hashing
// Description: Implements byte-wise lexicographic comparison between values
//              and views, the derived ordering predicates, and a stable
//              64-bit content hash suitable for map-style bucketing.
// Author: htiek
// Version: v0.1.0
// Created: 2026-08-06
// Modified: 2026-08-06
//
// Change History:
// - 2026-08-06 v0.1.0: Initial implementation

package text

import (
	"bytes"
	"hash/fnv"
)

// Equal reports whether the value and the viewed text hold the same bytes
func (v *Value) Equal(t View) bool {
	return bytes.Equal(v.data, t.b)
}

// Compare orders the value against the viewed text byte-wise and returns
// -1, 0, or +1. A strict prefix orders before the longer text.
func (v *Value) Compare(t View) int {
	return bytes.Compare(v.data, t.b)
}

// Less reports whether the value orders strictly before the viewed text
func (v *Value) Less(t View) bool {
	return v.Compare(t) < 0
}

// LessOrEqual reports whether the value orders before or equal to the
// viewed text
func (v *Value) LessOrEqual(t View) bool {
	return v.Compare(t) <= 0
}

// Greater reports whether the value orders strictly after the viewed text
func (v *Value) Greater(t View) bool {
	return v.Compare(t) > 0
}

// GreaterOrEqual reports whether the value orders after or equal to the
// viewed text
func (v *Value) GreaterOrEqual(t View) bool {
	return v.Compare(t) >= 0
}

// CompareViews orders two views byte-wise and returns -1, 0, or +1
func CompareViews(a, b View) int {
	return bytes.Compare(a.b, b.b)
}

// Hash returns a stable 64-bit FNV-1a hash of the contents. Equal contents
// always hash equal, across processes and runs.
func (v *Value) Hash() uint64 {
	h := fnv.New64a()
	h.Write(v.data)
	return h.Sum64()
}
