// File: convert_test.go
// Title: Tests for the Typed Conversion Framework
// Description: Covers rendering of Go values as text, strict whole-input
//              parsing into target types, radix parsing, and the probing
//              forms, including the extreme values of each integer width.
// Author: htiek
// Version: v0.1.0
// Created: 2026-08-06
// Modified: 2026-08-06
//
// Change History:
// - 2026-08-06 v0.1.0: Initial implementation

package text

import (
	"math"
	"testing"

	texterror "github.com/htiek/text/core/error"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name string
		got  Value
		want string
	}{
		{name: "bool true", got: From(true), want: "true"},
		{name: "bool false", got: From(false), want: "false"},
		{name: "byte is a character", got: From(byte('A')), want: "A"},
		{name: "string", got: From("hello"), want: "hello"},
		{name: "int", got: From(42), want: "42"},
		{name: "negative int", got: From(-7), want: "-7"},
		{name: "int64 min", got: From(int64(math.MinInt64)), want: "-9223372036854775808"},
		{name: "uint64 max", got: From(uint64(math.MaxUint64)), want: "18446744073709551615"},
		{name: "int8 is numeric", got: From(int8(-5)), want: "-5"},
		{name: "float", got: From(3.25), want: "3.25"},
		{name: "float negative zero", got: From(math.Copysign(0, -1)), want: "-0"},
		{name: "float32", got: From(float32(0.5)), want: "0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.String() != tt.want {
				t.Errorf("From() = %q; want %q", tt.got.String(), tt.want)
			}
		})
	}
}

func TestFromTextTypes(t *testing.T) {
	v := FromString("abc")

	fromValue := From(v)
	if fromValue.String() != "abc" {
		t.Errorf("From(Value) = %q; want %q", fromValue.String(), "abc")
	}
	if err := v.SetAt(0, 'X'); err != nil {
		t.Fatalf("SetAt() unexpected error: %v", err)
	}
	if fromValue.String() != "abc" {
		t.Errorf("From(Value) result changed with source: %q", fromValue.String())
	}

	fromView := From(Str("xyz"))
	if fromView.String() != "xyz" {
		t.Errorf("From(View) = %q; want %q", fromView.String(), "xyz")
	}
}

func TestFromBytes(t *testing.T) {
	src := []byte("hey")
	got := From(src)
	if got.String() != "hey" {
		t.Errorf("From([]byte) = %q; want %q", got.String(), "hey")
	}

	src[0] = 'X'
	if got.String() != "hey" {
		t.Errorf("From([]byte) result changed with source: %q", got.String())
	}
}

func TestToBytes(t *testing.T) {
	v := FromString("raw")
	got, err := To[[]byte](&v)
	if err != nil {
		t.Fatalf("To[[]byte] unexpected error: %v", err)
	}
	if string(got) != "raw" {
		t.Errorf("To[[]byte] = %q; want %q", got, "raw")
	}

	got[0] = 'X'
	if v.String() != "raw" {
		t.Errorf("value changed with To[[]byte] result: %q", v.String())
	}
}

func TestFromFallback(t *testing.T) {
	type point struct{ X, Y int }
	got := From(point{1, 2})
	if got.String() != "{1 2}" {
		t.Errorf("From(struct) = %q; want %q", got.String(), "{1 2}")
	}
}

func TestToInt(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{name: "simple", in: "42", want: 42},
		{name: "negative", in: "-7", want: -7},
		{name: "zero", in: "0", want: 0},
		{name: "leading space rejected", in: " 42", wantErr: true},
		{name: "trailing space rejected", in: "42 ", wantErr: true},
		{name: "partial parse rejected", in: "42x", wantErr: true},
		{name: "empty rejected", in: "", wantErr: true},
		{name: "float form rejected", in: "4.2", wantErr: true},
		{name: "plus sign", in: "+3", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FromString(tt.in)
			got, err := To[int](&v)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("To[int](%q) expected error, got nil", tt.in)
				}
				if !texterror.HasCode(err, texterror.CodeConversion) {
					t.Errorf("To[int](%q) code = %v; want %v", tt.in, texterror.GetCode(err), texterror.CodeConversion)
				}
				return
			}
			if err != nil {
				t.Fatalf("To[int](%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("To[int](%q) = %d; want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestToIntRange(t *testing.T) {
	minV := FromString("-9223372036854775808")
	if got, err := To[int64](&minV); err != nil || got != math.MinInt64 {
		t.Errorf("To[int64](min) = %d, %v; want %d, nil", got, err, int64(math.MinInt64))
	}

	over := FromString("9223372036854775808")
	if _, err := To[int64](&over); err == nil {
		t.Error("To[int64](max+1) expected error, got nil")
	}

	tight := FromString("128")
	if _, err := To[int8](&tight); err == nil {
		t.Error("To[int8](128) expected error, got nil")
	}

	neg := FromString("-1")
	if _, err := To[uint](&neg); err == nil {
		t.Error("To[uint](-1) expected error, got nil")
	}
}

func TestToOtherTypes(t *testing.T) {
	b := FromString("true")
	if got, err := To[bool](&b); err != nil || got != true {
		t.Errorf("To[bool](\"true\") = %v, %v; want true, nil", got, err)
	}
	titled := FromString("True")
	if _, err := To[bool](&titled); err == nil {
		t.Error("To[bool](\"True\") expected error, got nil")
	}

	c := FromString("x")
	if got, err := To[byte](&c); err != nil || got != 'x' {
		t.Errorf("To[byte](\"x\") = %q, %v; want 'x', nil", got, err)
	}
	long := FromString("xy")
	if _, err := To[byte](&long); err == nil {
		t.Error("To[byte](\"xy\") expected error, got nil")
	}
	empty := FromString("")
	if _, err := To[byte](&empty); err == nil {
		t.Error("To[byte](\"\") expected error, got nil")
	}

	s := FromString("anything goes")
	if got, err := To[string](&s); err != nil || got != "anything goes" {
		t.Errorf("To[string] = %q, %v; want %q, nil", got, err, "anything goes")
	}

	f := FromString("2.5e3")
	if got, err := To[float64](&f); err != nil || got != 2500 {
		t.Errorf("To[float64](\"2.5e3\") = %v, %v; want 2500, nil", got, err)
	}
}

func TestToUnsupportedTarget(t *testing.T) {
	v := FromString("x")
	_, err := To[[]int](&v)
	if err == nil {
		t.Fatal("To[[]int] expected error, got nil")
	}
	if !texterror.HasCode(err, texterror.CodeConversion) {
		t.Errorf("To[[]int] code = %v; want %v", texterror.GetCode(err), texterror.CodeConversion)
	}
}

func TestToFromIdentity(t *testing.T) {
	ints := []int64{0, 1, -1, math.MinInt64, math.MaxInt64}
	for _, n := range ints {
		v := From(n)
		got, err := To[int64](&v)
		if err != nil {
			t.Fatalf("To(From(%d)) unexpected error: %v", n, err)
		}
		if got != n {
			t.Errorf("To(From(%d)) = %d", n, got)
		}
	}

	floats := []float64{0, math.Copysign(0, -1), 1.5, -2.25, math.MaxFloat64, math.SmallestNonzeroFloat64}
	for _, f := range floats {
		v := From(f)
		got, err := To[float64](&v)
		if err != nil {
			t.Fatalf("To(From(%g)) unexpected error: %v", f, err)
		}
		if got != f || math.Signbit(got) != math.Signbit(f) {
			t.Errorf("To(From(%g)) = %g", f, got)
		}
	}

	for _, s := range []string{"", "x", "with space", "\x00"} {
		v := From(s)
		got, err := To[string](&v)
		if err != nil {
			t.Fatalf("To(From(%q)) unexpected error: %v", s, err)
		}
		if got != s {
			t.Errorf("To(From(%q)) = %q", s, got)
		}
	}

	for _, ch := range []byte{0, 'a', 0xff} {
		v := From(ch)
		got, err := To[byte](&v)
		if err != nil {
			t.Fatalf("To(From(%q)) unexpected error: %v", ch, err)
		}
		if got != ch {
			t.Errorf("To(From(%q)) = %q", ch, got)
		}
	}
}

func TestToRadix(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		radix   int
		want    int64
		wantErr texterror.Code
	}{
		{name: "hex", in: "1F", radix: 16, want: 31},
		{name: "hex lowercase", in: "1f", radix: 16, want: 31},
		{name: "binary", in: "1011", radix: 2, want: 11},
		{name: "base 36", in: "z", radix: 36, want: 35},
		{name: "negative", in: "-ff", radix: 16, want: -255},
		{name: "surrounding whitespace", in: "  2a  ", radix: 16, want: 42},
		{name: "prefix rejected", in: "0x1F", radix: 16, wantErr: texterror.CodeConversion},
		{name: "digit out of radix", in: "12", radix: 2, wantErr: texterror.CodeConversion},
		{name: "empty", in: "", radix: 10, wantErr: texterror.CodeConversion},
		{name: "radix too small", in: "1", radix: 1, wantErr: texterror.CodeInvalidArgument},
		{name: "radix too large", in: "1", radix: 37, wantErr: texterror.CodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FromString(tt.in)
			got, err := ToRadix[int64](&v, tt.radix)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("ToRadix(%q, %d) expected error, got nil", tt.in, tt.radix)
				}
				if !texterror.HasCode(err, tt.wantErr) {
					t.Errorf("ToRadix(%q, %d) code = %v; want %v", tt.in, tt.radix, texterror.GetCode(err), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToRadix(%q, %d) unexpected error: %v", tt.in, tt.radix, err)
			}
			if got != tt.want {
				t.Errorf("ToRadix(%q, %d) = %d; want %d", tt.in, tt.radix, got, tt.want)
			}
		})
	}
}

func TestToRadixUnsigned(t *testing.T) {
	v := FromString("ff")
	if got, err := ToRadix[uint8](&v, 16); err != nil || got != 255 {
		t.Errorf("ToRadix[uint8](\"ff\", 16) = %d, %v; want 255, nil", got, err)
	}

	neg := FromString("-1")
	_, err := ToRadix[uint8](&neg, 16)
	if err == nil {
		t.Fatal("ToRadix[uint8](\"-1\") expected error, got nil")
	}
	if !texterror.HasCode(err, texterror.CodeInvalidArgument) {
		t.Errorf("ToRadix[uint8](\"-1\") code = %v; want %v", texterror.GetCode(err), texterror.CodeInvalidArgument)
	}

	over := FromString("100")
	if _, err := ToRadix[uint8](&over, 16); err == nil {
		t.Error("ToRadix[uint8](\"100\", 16) expected error, got nil")
	}
}

func TestToRadixNamedType(t *testing.T) {
	type fileMode uint32
	v := FromString("755")
	got, err := ToRadix[fileMode](&v, 8)
	if err != nil {
		t.Fatalf("ToRadix[fileMode] unexpected error: %v", err)
	}
	if got != 0o755 {
		t.Errorf("ToRadix[fileMode](\"755\", 8) = %o; want 755", got)
	}
}

func TestIs(t *testing.T) {
	num := FromString("42")
	word := FromString("abc")

	if !Is[int](&num) {
		t.Error("Is[int](\"42\") = false; want true")
	}
	if Is[int](&word) {
		t.Error("Is[int](\"abc\") = true; want false")
	}
	if !Is[string](&word) {
		t.Error("Is[string](\"abc\") = false; want true")
	}
	if Is[bool](&word) {
		t.Error("Is[bool](\"abc\") = true; want false")
	}
}

func TestIsRadix(t *testing.T) {
	hex := FromString("1F")

	ok, err := IsRadix[int](&hex, 16)
	if err != nil {
		t.Fatalf("IsRadix() unexpected error: %v", err)
	}
	if !ok {
		t.Error("IsRadix[int](\"1F\", 16) = false; want true")
	}

	ok, err = IsRadix[int](&hex, 10)
	if err != nil {
		t.Fatalf("IsRadix() unexpected error: %v", err)
	}
	if ok {
		t.Error("IsRadix[int](\"1F\", 10) = true; want false")
	}

	if _, err := IsRadix[int](&hex, 1); err == nil {
		t.Error("IsRadix() with radix 1 expected error, got nil")
	}
}
