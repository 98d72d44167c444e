// File: url.go
// Title: URL Form Coding
// Description: Implements application/x-www-form-urlencoded style encoding
//              and decoding of text values. Unreserved bytes pass through,
//              spaces map to '+', and everything else becomes a two-digit
//              uppercase percent escape. Decoding is strict and rejects any
//              input the encoder could not have produced.
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

const upperHexDigits = "0123456789ABCDEF"

// urlSafe reports whether a byte passes through URL encoding unchanged
func urlSafe(ch byte) bool {
	if IsAlnum(ch) {
		return true
	}
	switch ch {
	case '-', '_', '.', '~', '*':
		return true
	}
	return false
}

// URLEncoded returns the URL form encoding of the value. Letters, digits,
// and the bytes - _ . ~ * pass through, a space becomes '+', and every other
// byte becomes %XX with uppercase hex digits.
func (v *Value) URLEncoded() Value {
	out := make([]byte, 0, len(v.data))
	for _, ch := range v.data {
		switch {
		case urlSafe(ch):
			out = append(out, ch)
		case ch == ' ':
			out = append(out, '+')
		default:
			out = append(out, '%', upperHexDigits[ch>>4], upperHexDigits[ch&0x0F])
		}
	}
	return Value{data: out}
}

// URLDecoded reverses URLEncoded. A '%' not followed by two hex digits, or
// any byte the encoder would not emit, fails with a MALFORMED_INPUT error.
func (v *Value) URLDecoded() (Value, error) {
	out := make([]byte, 0, len(v.data))
	for i := 0; i < len(v.data); i++ {
		ch := v.data[i]
		switch {
		case ch == '%':
			if i+2 >= len(v.data) {
				return Value{}, texterror.MalformedInput("value.urldecode", "percent escape is truncated").
					WithDetail("offset", i)
			}
			hi, lo := hexValue(v.data[i+1]), hexValue(v.data[i+2])
			if hi < 0 || lo < 0 {
				return Value{}, texterror.MalformedInput("value.urldecode", "percent escape is not two hex digits").
					WithDetail("offset", i)
			}
			out = append(out, byte(hi<<4|lo))
			i += 2
		case ch == '+':
			out = append(out, ' ')
		case urlSafe(ch):
			out = append(out, ch)
		default:
			return Value{}, texterror.MalformedInput("value.urldecode", "byte is not valid in URL encoded text").
				WithDetail("offset", i).
				WithDetail("byte", int(ch))
		}
	}
	return Value{data: out}, nil
}
