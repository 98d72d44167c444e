// File: iterator.go
// Title: Checked Byte Iterator
// Description: Implements a position-based iterator over a Value that detects
//              its own staleness. Every access compares the version snapshot
//              taken at creation against the owner's live mutation counter and
//              fails with INVALID_ITERATOR once the value has been reshaped.
// Author: htiek
// Version: v0.1.0
// Created: 2026-08-06
// Modified: 2026-08-06
//
// Change History:
// - 2026-08-06 v0.1.0: Initial implementation

package text

import (
	texterror "github.com/htiek/text/core/error"
)

// Iterator walks the bytes of a Value while tracking whether the value has
// been reshaped since the iterator was created. The zero Iterator is not
// usable; obtain one from Begin or End.
type Iterator struct {
	owner *Value
	pos   int
	ver   uint64
}

// Begin returns an iterator positioned at the first byte
func (v *Value) Begin() Iterator {
	return Iterator{owner: v, pos: 0, ver: v.ver.current()}
}

// End returns an iterator positioned one past the last byte
func (v *Value) End() Iterator {
	return Iterator{owner: v, pos: len(v.data), ver: v.ver.current()}
}

// check fails when the iterator is unbound or its owner has been reshaped
func (it *Iterator) check(operation string) error {
	if it.owner == nil {
		return texterror.InvalidIterator(operation).
			WithDetail("reason", "iterator is not bound to a value")
	}
	if it.ver != it.owner.ver.current() {
		return texterror.InvalidIterator(operation).
			WithDetail("reason", "value has been modified since the iterator was created")
	}
	return nil
}

// Current returns the byte at the iterator position. Dereferencing the end
// position fails with an INDEX_OUT_OF_RANGE error.
func (it *Iterator) Current() (byte, error) {
	if err := it.check("iterator.current"); err != nil {
		return 0, err
	}
	if it.pos < 0 || it.pos >= len(it.owner.data) {
		return 0, texterror.IndexOutOfRange("iterator.current", it.pos, 0, len(it.owner.data)-1)
	}
	return it.owner.data[it.pos], nil
}

// Next moves the iterator one byte forward. Moving past the end position
// fails and leaves the iterator where it was.
func (it *Iterator) Next() error {
	return it.Advance(1)
}

// Prev moves the iterator one byte backward. Moving before the first byte
// fails and leaves the iterator where it was.
func (it *Iterator) Prev() error {
	return it.Advance(-1)
}

// Advance moves the iterator by the given signed distance. The resulting
// position must stay within [0, Len()]; otherwise the call fails with an
// INDEX_OUT_OF_RANGE error and the iterator does not move.
func (it *Iterator) Advance(n int) error {
	if err := it.check("iterator.advance"); err != nil {
		return err
	}
	pos := it.pos + n
	if pos < 0 || pos > len(it.owner.data) {
		return texterror.IndexOutOfRange("iterator.advance", pos, 0, len(it.owner.data))
	}
	it.pos = pos
	return nil
}

// Pos returns the current byte offset of the iterator
func (it *Iterator) Pos() (int, error) {
	if err := it.check("iterator.pos"); err != nil {
		return 0, err
	}
	return it.pos, nil
}

// AtEnd reports whether the iterator sits one past the last byte
func (it *Iterator) AtEnd() (bool, error) {
	if err := it.check("iterator.atend"); err != nil {
		return false, err
	}
	return it.pos == len(it.owner.data), nil
}

// EqualTo reports whether two iterators address the same position of the
// same value. Both iterators must still be valid; iterators over different
// values never compare equal.
func (it *Iterator) EqualTo(other Iterator) (bool, error) {
	if err := it.check("iterator.equalto"); err != nil {
		return false, err
	}
	if err := other.check("iterator.equalto"); err != nil {
		return false, err
	}
	return it.owner == other.owner && it.pos == other.pos, nil
}

// Set writes a byte at the iterator position. Writing at the end position
// fails with an INDEX_OUT_OF_RANGE error. The write does not reshape the
// value, so other iterators stay valid.
func (it *Iterator) Set(ch byte) error {
	if err := it.check("iterator.set"); err != nil {
		return err
	}
	if it.pos < 0 || it.pos >= len(it.owner.data) {
		return texterror.IndexOutOfRange("iterator.set", it.pos, 0, len(it.owner.data)-1)
	}
	it.owner.data[it.pos] = ch
	return nil
}
