// File: view.go
// Title: Non-Owning Text View
// Description: Implements View, a read-only window over a run of bytes that
//              unifies everything "text-like" at call boundaries: single
//              characters, Go strings, byte slices, and owned Values. There
//              is deliberately no constructor for numeric scalars, so passing
//              an int where text was meant fails to compile.
// Author: htiek
// Version: v0.1.0
// Created: 2026-08-05
// Modified: 2026-08-05
//
// Change History:
// - 2026-08-05 v0.1.0: Initial implementation

package text

import (
	"unsafe"

	texterror "github.com/htiek/text/core/error"
)

// View is a non-owning, read-only reference to a contiguous run of bytes.
// A View never outlives its source: it references the source's storage
// directly (except Char, which embeds its own single byte). Views are meant
// to be built transiently at call sites and passed by value, never stored.
type View struct {
	b []byte
}

// Char creates a view of a single character. The view owns its one byte of
// backing storage, mirroring the transient single-character case.
func Char(ch byte) View {
	return View{b: []byte{ch}}
}

// Str creates a view of a Go string without copying. The view shares the
// string's storage; it is read-only by construction, so this is safe as long
// as the view does not outlive the string.
func Str(s string) View {
	if len(s) == 0 {
		return View{}
	}
	return View{b: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// Bytes creates a view of a byte slice. A nil slice is the byte-level analog
// of a null C string and is rejected; an empty non-nil slice is a legal empty
// view. Embedded NUL bytes are preserved.
func Bytes(b []byte) (View, error) {
	if b == nil {
		return View{}, texterror.NullInput("view.bytes")
	}
	return View{b: b}, nil
}

// Size returns the number of bytes in the view
func (v View) Size() int {
	return len(v.b)
}

// IsEmpty reports whether the view references zero bytes
func (v View) IsEmpty() bool {
	return len(v.b) == 0
}

// At returns the byte at the given index. The legal interval is
// [0, Size()-1]; there is no terminator byte to sense past the end.
func (v View) At(index int) (byte, error) {
	if index < 0 || index >= len(v.b) {
		return 0, texterror.IndexOutOfRange("view.at", index, 0, len(v.b)-1)
	}
	return v.b[index], nil
}

// String returns a copy of the viewed bytes as a Go string
func (v View) String() string {
	return string(v.b)
}
