// File: value.go
// Title: Owning Text Value
// Description: Implements Value, the owning, mutable text type: construction,
//              indexed access, structural mutation (insert, remove, append),
//              and data export. Structural mutators bump the owned mutation
//              counter; queries and single-byte overwrites do not.
// Author: htiek
// Version: v0.1.0
// Created: 2026-08-05
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-05 v0.1.0: Initial implementation
// - 2026-08-12 v0.1.1: Reader/Writer integration

package text

import (
	"io"

	texterror "github.com/htiek/text/core/error"
)

// Value is an owning, mutable text value over 8-bit code units. The zero
// value is an empty, usable Value. Contents may include embedded NUL bytes.
// A Value exclusively owns its buffer and mutation counter; it is not safe
// for concurrent mutation.
type Value struct {
	data []byte
	ver  versionTracker
}

// FromString creates a Value holding a copy of the given string's bytes
func FromString(s string) Value {
	return Value{data: []byte(s)}
}

// FromView creates a Value holding a copy of the viewed bytes
func FromView(t View) Value {
	data := make([]byte, len(t.b))
	copy(data, t.b)
	return Value{data: data}
}

// Repeat creates a Value holding n copies of the given character.
// A negative count fails with an INVALID_ARGUMENT error.
func Repeat(n int, ch byte) (Value, error) {
	if n < 0 {
		return Value{}, texterror.InvalidArgument("value.repeat", "repeat count must not be negative").
			WithDetail("count", n)
	}
	data := make([]byte, n)
	for i := range data {
		data[i] = ch
	}
	return Value{data: data}, nil
}

// Len returns the number of bytes held
func (v *Value) Len() int {
	return len(v.data)
}

// IsEmpty reports whether the value holds zero bytes
func (v *Value) IsEmpty() bool {
	return len(v.data) == 0
}

// At returns the byte at the given index; the legal interval is [0, Len()-1]
func (v *Value) At(index int) (byte, error) {
	if err := v.checkIndex("value.at", index, 0, len(v.data)-1); err != nil {
		return 0, err
	}
	return v.data[index], nil
}

// SetAt overwrites the byte at the given index in place. This is not a
// structural mutation and does not invalidate iterators.
func (v *Value) SetAt(index int, ch byte) error {
	if err := v.checkIndex("value.setat", index, 0, len(v.data)-1); err != nil {
		return err
	}
	v.data[index] = ch
	return nil
}

// View returns a read-only view of the value's current contents. The view
// shares the value's storage and must not be used after the value mutates.
func (v *Value) View() View {
	return View{b: v.data}
}

// String returns a copy of the contents as a Go string
func (v *Value) String() string {
	return string(v.data)
}

// Bytes returns a copy of the raw contents. Callers own the returned slice.
func (v *Value) Bytes() []byte {
	out := make([]byte, len(v.data))
	copy(out, v.data)
	return out
}

// Clone returns an independent copy of the value with a fresh mutation counter
func (v *Value) Clone() Value {
	return Value{data: v.Bytes()}
}

// Insert splices the viewed bytes into the value at the given index.
// The index may equal Len(), which appends.
func (v *Value) Insert(index int, t View) error {
	if err := v.checkIndex("value.insert", index, 0, len(v.data)); err != nil {
		return err
	}

	// Build fresh storage so inserting a view of ourselves stays correct
	out := make([]byte, 0, len(v.data)+len(t.b))
	out = append(out, v.data[:index]...)
	out = append(out, t.b...)
	out = append(out, v.data[index:]...)
	v.data = out
	v.ver.bump()
	return nil
}

// Remove erases the single byte at the given index
func (v *Value) Remove(index int) error {
	return v.RemoveN(index, 1)
}

// RemoveN erases up to length bytes starting at index. Removal past the end
// stops at the end, so RemoveN(Len(), k) is a legal no-op. A negative length
// fails with an INVALID_ARGUMENT error.
func (v *Value) RemoveN(index, length int) error {
	if err := v.checkIndex("value.remove", index, 0, len(v.data)); err != nil {
		return err
	}
	if length < 0 {
		return texterror.InvalidArgument("value.remove", "removal length must not be negative").
			WithDetail("length", length)
	}

	end := index + length
	if end > len(v.data) || end < 0 { // end < 0 guards length overflow
		end = len(v.data)
	}
	v.data = append(v.data[:index], v.data[end:]...)
	v.ver.bump()
	return nil
}

// Append appends the viewed bytes to the end of the value
func (v *Value) Append(t View) {
	v.data = append(v.data, t.b...)
	v.ver.bump()
}

// Concat returns a new Value formed by appending the viewed bytes to a copy
// of v. The original is not modified.
func Concat(v *Value, t View) Value {
	out := make([]byte, 0, len(v.data)+len(t.b))
	out = append(out, v.data...)
	out = append(out, t.b...)
	return Value{data: out}
}

// WriteTo writes the raw contents to w, implementing io.WriterTo
func (v *Value) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(v.data)
	return int64(n), err
}

// AppendFrom reads r to exhaustion and appends everything read. The version
// is bumped only when at least one byte arrived.
func (v *Value) AppendFrom(r io.Reader) (int64, error) {
	read, err := io.ReadAll(r)
	if len(read) > 0 {
		v.data = append(v.data, read...)
		v.ver.bump()
	}
	if err != nil {
		return int64(len(read)), texterror.Wrap(err, "could not read text from stream").
			WithOperation("value.appendfrom")
	}
	return int64(len(read)), nil
}

// checkIndex validates index against the inclusive interval [low, high]
func (v *Value) checkIndex(operation string, index, low, high int) error {
	if index < low || index > high {
		return texterror.IndexOutOfRange(operation, index, low, high)
	}
	return nil
}
