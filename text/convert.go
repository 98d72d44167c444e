// File: convert.go
// Title: Typed Conversion Framework
// Description: Implements generic conversion between text values and Go
//              types. From renders any value as text and never fails; To
//              parses the whole input strictly into a target type; ToRadix
//              parses integers in an explicit radix from 2 to 36; Is and
//              IsRadix probe whether a conversion would succeed.
// Author: htiek
// Version: v0.1.0
// Created: 2026-08-06
// Modified: 2026-08-06
//
// Change History:
// - 2026-08-06 v0.1.0: Initial implementation

package text

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"

	texterror "github.com/htiek/text/core/error"
)

// Integer constrains ToRadix and IsRadix to integer types, including
// named types whose underlying type is an integer
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// From renders a value of any type as text and never fails. Booleans become
// "true" or "false", a byte becomes the single character it encodes, text
// types pass through, and numeric types use their shortest decimal form.
// Other types render through encoding.TextMarshaler, fmt.Stringer, or the
// fmt default formatting, in that order.
func From[T any](val T) Value {
	switch v := any(val).(type) {
	case bool:
		if v {
			return FromString("true")
		}
		return FromString("false")
	case byte:
		return FromView(Char(v))
	case string:
		return FromString(v)
	case []byte:
		data := make([]byte, len(v))
		copy(data, v)
		return Value{data: data}
	case Value:
		return v.Clone()
	case *Value:
		return v.Clone()
	case View:
		return FromView(v)
	case int:
		return FromString(strconv.Itoa(v))
	case int8:
		return FromString(strconv.FormatInt(int64(v), 10))
	case int16:
		return FromString(strconv.FormatInt(int64(v), 10))
	case int32:
		return FromString(strconv.FormatInt(int64(v), 10))
	case int64:
		return FromString(strconv.FormatInt(v, 10))
	case uint:
		return FromString(strconv.FormatUint(uint64(v), 10))
	case uint16:
		return FromString(strconv.FormatUint(uint64(v), 10))
	case uint32:
		return FromString(strconv.FormatUint(uint64(v), 10))
	case uint64:
		return FromString(strconv.FormatUint(v, 10))
	case float32:
		return FromString(strconv.FormatFloat(float64(v), 'g', -1, 32))
	case float64:
		return FromString(strconv.FormatFloat(v, 'g', -1, 64))
	case encoding.TextMarshaler:
		if b, err := v.MarshalText(); err == nil {
			return Value{data: b}
		}
		return FromString(fmt.Sprintf("%v", v))
	case fmt.Stringer:
		return FromString(v.String())
	default:
		return FromString(fmt.Sprintf("%v", v))
	}
}

// To parses the whole input strictly into the target type. Nothing is
// trimmed: leading or trailing whitespace, a partial parse, or an
// out-of-range magnitude all fail with a CONVERSION_ERROR. A byte target
// requires exactly one character; an int8 target parses as a number.
func To[T any](v *Value) (T, error) {
	var out T
	s := v.String()

	fail := func() (T, error) {
		return out, texterror.ConversionFor("text.to", fmt.Sprintf("%T", out), s)
	}

	switch p := any(&out).(type) {
	case *bool:
		switch s {
		case "true":
			*p = true
		case "false":
			*p = false
		default:
			return fail()
		}
	case *byte:
		if len(s) != 1 {
			return fail()
		}
		*p = s[0]
	case *string:
		*p = s
	case *[]byte:
		*p = v.Bytes()
	case *Value:
		*p = v.Clone()
	case *int:
		n, err := strconv.ParseInt(s, 10, strconv.IntSize)
		if err != nil {
			return fail()
		}
		*p = int(n)
	case *int8:
		n, err := strconv.ParseInt(s, 10, 8)
		if err != nil {
			return fail()
		}
		*p = int8(n)
	case *int16:
		n, err := strconv.ParseInt(s, 10, 16)
		if err != nil {
			return fail()
		}
		*p = int16(n)
	case *int32:
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return fail()
		}
		*p = int32(n)
	case *int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fail()
		}
		*p = n
	case *uint:
		n, err := strconv.ParseUint(s, 10, strconv.IntSize)
		if err != nil {
			return fail()
		}
		*p = uint(n)
	case *uint16:
		n, err := strconv.ParseUint(s, 10, 16)
		if err != nil {
			return fail()
		}
		*p = uint16(n)
	case *uint32:
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return fail()
		}
		*p = uint32(n)
	case *uint64:
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fail()
		}
		*p = n
	case *float32:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return fail()
		}
		*p = float32(f)
	case *float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fail()
		}
		*p = f
	default:
		return out, texterror.Conversion("text.to",
			fmt.Sprintf("type %T is not a supported conversion target", out))
	}
	return out, nil
}

// ToRadix parses the input as an integer written in the given radix. The
// radix must lie in [2, 36]; anything else fails with an INVALID_ARGUMENT
// error. Surrounding ASCII whitespace is ignored, digits beyond 9 may use
// either letter case, and a radix prefix such as "0x" is never accepted.
// A leading minus sign on an unsigned target fails with an INVALID_ARGUMENT
// error rather than wrapping.
func ToRadix[T Integer](v *Value, radix int) (T, error) {
	var out T
	if radix < 2 || radix > 36 {
		return out, texterror.InvalidArgument("text.toradix", "radix must lie between 2 and 36").
			WithDetail("radix", radix)
	}

	trimmed := v.Trimmed()
	s := trimmed.String()
	kind := reflect.TypeOf(out).Kind()
	bits := reflect.TypeOf(out).Bits()

	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, radix, bits)
		if err != nil {
			return out, texterror.ConversionFor("text.toradix", fmt.Sprintf("%T", out), s).
				WithDetail("radix", radix)
		}
		return T(n), nil
	default:
		if len(s) > 0 && s[0] == '-' {
			return out, texterror.InvalidArgument("text.toradix", "negative input for an unsigned target").
				WithDetail("input", s)
		}
		n, err := strconv.ParseUint(s, radix, bits)
		if err != nil {
			return out, texterror.ConversionFor("text.toradix", fmt.Sprintf("%T", out), s).
				WithDetail("radix", radix)
		}
		return T(n), nil
	}
}

// Is reports whether To would succeed for the target type
func Is[T any](v *Value) bool {
	_, err := To[T](v)
	return err == nil
}

// IsRadix reports whether ToRadix would succeed for the target type in the
// given radix. An out-of-range radix is an error in its own right and is
// reported rather than folded into a false result.
func IsRadix[T Integer](v *Value, radix int) (bool, error) {
	if radix < 2 || radix > 36 {
		return false, texterror.InvalidArgument("text.isradix", "radix must lie between 2 and 36").
			WithDetail("radix", radix)
	}
	_, err := ToRadix[T](v, radix)
	return err == nil, nil
}
