// File: search.go
// Title: Substring Search and Slicing
// Description: Implements forward and backward substring search, prefix and
//              suffix tests, and substring extraction. Search returns the -1
//              sentinel when the needle does not occur; bounds failures are
//              reported as structured errors.
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

	texterror "github.com/htiek/text/core/error"
)

// NotFound is the sentinel returned by searches when the needle does not occur
const NotFound = -1

// Find returns the index of the first occurrence of the viewed text,
// or NotFound when it does not occur
func (v *Value) Find(t View) int {
	pos, _ := v.FindFrom(t, 0)
	return pos
}

// FindFrom returns the index of the first occurrence of the viewed text that
// starts at or after the given index. A negative start index fails with an
// INVALID_ARGUMENT error; a start index past the end simply finds nothing.
// An empty needle matches at the start index itself.
func (v *Value) FindFrom(t View, from int) (int, error) {
	if from < 0 {
		return NotFound, texterror.InvalidArgument("value.find", "start index must be greater than or equal to zero").
			WithDetail("start", from)
	}
	if from > len(v.data) {
		return NotFound, nil
	}

	i := bytes.Index(v.data[from:], t.b)
	if i < 0 {
		return NotFound, nil
	}
	return from + i, nil
}

// FindLast returns the index of the last occurrence of the viewed text,
// or NotFound when it does not occur
func (v *Value) FindLast(t View) int {
	pos, _ := v.FindLastFrom(t, len(v.data))
	return pos
}

// FindLastFrom returns the index of the last occurrence of the viewed text
// that starts at or before the given index. A negative index fails with an
// INVALID_ARGUMENT error. An empty needle matches at min(last, Len()).
func (v *Value) FindLastFrom(t View, last int) (int, error) {
	if last < 0 {
		return NotFound, texterror.InvalidArgument("value.findlast", "last index must be greater than or equal to zero").
			WithDetail("last", last)
	}

	// Occurrences starting at or before last lie fully within this prefix
	end := last + len(t.b)
	if end > len(v.data) || end < 0 {
		end = len(v.data)
	}

	i := bytes.LastIndex(v.data[:end], t.b)
	if i < 0 {
		return NotFound, nil
	}
	return i, nil
}

// Contains reports whether the viewed text occurs anywhere in the value
func (v *Value) Contains(t View) bool {
	return v.Find(t) != NotFound
}

// StartsWith reports whether the value begins with the viewed text.
// A candidate longer than the value is never a prefix.
func (v *Value) StartsWith(t View) bool {
	return bytes.HasPrefix(v.data, t.b)
}

// EndsWith reports whether the value ends with the viewed text.
// A candidate longer than the value is never a suffix.
func (v *Value) EndsWith(t View) bool {
	return bytes.HasSuffix(v.data, t.b)
}

// Substr returns a copy of the contents from start through the end.
// The start index may equal Len(), yielding an empty value.
func (v *Value) Substr(start int) (Value, error) {
	return v.SubstrN(start, len(v.data))
}

// SubstrN returns a copy of up to length bytes starting at start. A length
// reaching past the end is clamped to the available tail; a negative length
// fails with an INVALID_ARGUMENT error.
func (v *Value) SubstrN(start, length int) (Value, error) {
	if err := v.checkIndex("value.substr", start, 0, len(v.data)); err != nil {
		return Value{}, err
	}
	if length < 0 {
		return Value{}, texterror.InvalidArgument("value.substr", "substring length must not be negative").
			WithDetail("length", length)
	}

	end := start + length
	if end > len(v.data) || end < 0 {
		end = len(v.data)
	}
	out := make([]byte, end-start)
	copy(out, v.data[start:end])
	return Value{data: out}, nil
}
