// File: ctype.go
// Title: ASCII Character Classification
// Description: Implements classification and case mapping for 8-bit code
//              units. These deliberately operate on bytes, not runes: the
//              Value type is specified over 8-bit units and letters outside
//              the English alphabet pass through case conversion unchanged.
// Author: htiek
// Version: v0.1.0
// Created: 2026-08-05
// Modified: 2026-08-05
//
// Change History:
// - 2026-08-05 v0.1.0: Initial implementation

package text

// IsAlpha reports whether ch is an ASCII letter
func IsAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// IsDigit reports whether ch is an ASCII decimal digit
func IsDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// IsAlnum reports whether ch is an ASCII letter or digit
func IsAlnum(ch byte) bool {
	return IsAlpha(ch) || IsDigit(ch)
}

// IsSpace reports whether ch is ASCII whitespace
func IsSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// IsPrint reports whether ch is a printable ASCII character, including space
func IsPrint(ch byte) bool {
	return ch >= 0x20 && ch < 0x7f
}

// IsPunct reports whether ch is printable ASCII punctuation
func IsPunct(ch byte) bool {
	return IsPrint(ch) && ch != ' ' && !IsAlnum(ch)
}

// IsHexDigit reports whether ch is a hexadecimal digit
func IsHexDigit(ch byte) bool {
	return IsDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// ToUpperChar maps an ASCII lowercase letter to uppercase; other bytes pass through
func ToUpperChar(ch byte) byte {
	if ch >= 'a' && ch <= 'z' {
		return ch - 'a' + 'A'
	}
	return ch
}

// ToLowerChar maps an ASCII uppercase letter to lowercase; other bytes pass through
func ToLowerChar(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch - 'A' + 'a'
	}
	return ch
}

// hexValue returns the numeric value of a hex digit, or -1 when ch is not one
func hexValue(ch byte) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10
	default:
		return -1
	}
}
