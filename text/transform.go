// File: transform.go
// Title: Text Transformation Operations
// Description: Implements case conversion, whitespace trimming, pattern
//              replacement, and splitting and joining on a separator. Case
//              conversion rewrites bytes in place and does not invalidate
//              iterators; operations that change the length do.
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

// ToUpper converts every ASCII letter in place to its uppercase form.
// The length is unchanged, so iterators stay valid.
func (v *Value) ToUpper() {
	for i, ch := range v.data {
		v.data[i] = ToUpperChar(ch)
	}
}

// ToLower converts every ASCII letter in place to its lowercase form.
// The length is unchanged, so iterators stay valid.
func (v *Value) ToLower() {
	for i, ch := range v.data {
		v.data[i] = ToLowerChar(ch)
	}
}

// AsUpper returns an uppercase copy and leaves the receiver unchanged
func (v *Value) AsUpper() Value {
	out := v.Clone()
	out.ToUpper()
	return out
}

// AsLower returns a lowercase copy and leaves the receiver unchanged
func (v *Value) AsLower() Value {
	out := v.Clone()
	out.ToLower()
	return out
}

// leadingSpace returns the number of whitespace bytes at the front
func leadingSpace(b []byte) int {
	n := 0
	for n < len(b) && IsSpace(b[n]) {
		n++
	}
	return n
}

// trailingSpace returns the index just past the last non-whitespace byte
func trailingSpace(b []byte) int {
	n := len(b)
	for n > 0 && IsSpace(b[n-1]) {
		n--
	}
	return n
}

// TrimFront removes leading whitespace in place and invalidates iterators
func (v *Value) TrimFront() {
	n := leadingSpace(v.data)
	v.data = append(v.data[:0], v.data[n:]...)
	v.ver.bump()
}

// TrimBack removes trailing whitespace in place and invalidates iterators
func (v *Value) TrimBack() {
	v.data = v.data[:trailingSpace(v.data)]
	v.ver.bump()
}

// Trim removes leading and trailing whitespace in place and
// invalidates iterators
func (v *Value) Trim() {
	v.TrimBack()
	v.TrimFront()
}

// FrontTrimmed returns a copy with leading whitespace removed
func (v *Value) FrontTrimmed() Value {
	return FromView(View{b: v.data[leadingSpace(v.data):]})
}

// BackTrimmed returns a copy with trailing whitespace removed
func (v *Value) BackTrimmed() Value {
	return FromView(View{b: v.data[:trailingSpace(v.data)]})
}

// Trimmed returns a copy with leading and trailing whitespace removed
func (v *Value) Trimmed() Value {
	b := v.data[leadingSpace(v.data):]
	return FromView(View{b: b[:trailingSpace(b)]})
}

// ReplaceAll replaces every occurrence of pattern with replacement and
// reports how many replacements were made. The search resumes after each
// inserted replacement, so replacement text is never rescanned. An empty
// pattern fails with an INVALID_ARGUMENT error; iterators are invalidated
// only when at least one replacement was made.
func (v *Value) ReplaceAll(pattern, replacement View) (int, error) {
	if len(pattern.b) == 0 {
		return 0, texterror.InvalidArgument("value.replaceall", "replacement pattern must not be empty")
	}

	count := 0
	out := make([]byte, 0, len(v.data))
	rest := v.data
	for {
		i := bytes.Index(rest, pattern.b)
		if i < 0 {
			out = append(out, rest...)
			break
		}
		out = append(out, rest[:i]...)
		out = append(out, replacement.b...)
		rest = rest[i+len(pattern.b):]
		count++
	}
	v.data = out
	if count > 0 {
		v.ver.bump()
	}
	return count, nil
}

// Split divides the value on each occurrence of the separator and returns
// the resulting tokens. Empty tokens produced by adjacent separators or a
// leading separator are dropped; a trailing non-empty remainder is kept.
// An empty separator fails with an INVALID_ARGUMENT error.
func (v *Value) Split(sep View) ([]Value, error) {
	if len(sep.b) == 0 {
		return nil, texterror.InvalidArgument("value.split", "separator must not be empty")
	}

	var tokens []Value
	rest := v.data
	for {
		i := bytes.Index(rest, sep.b)
		if i < 0 {
			break
		}
		if i > 0 {
			tokens = append(tokens, FromView(View{b: rest[:i]}))
		}
		rest = rest[i+len(sep.b):]
	}
	if len(rest) > 0 {
		tokens = append(tokens, FromView(View{b: rest}))
	}
	return tokens, nil
}

// Join concatenates the parts with the separator between consecutive parts
func Join(parts []Value, sep View) Value {
	size := 0
	for _, p := range parts {
		size += len(p.data)
	}
	if len(parts) > 1 {
		size += (len(parts) - 1) * len(sep.b)
	}

	out := make([]byte, 0, size)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep.b...)
		}
		out = append(out, p.data...)
	}
	return Value{data: out}
}

// JoinLines joins the parts with a newline between consecutive parts
func JoinLines(parts []Value) Value {
	return Join(parts, Char('\n'))
}
