package attr

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/vango-dev/vattr/pkg/reactive"
)

// IntoAttribute is implemented by types that know how to become an
// attribute. The scope must be passed on to any nested conversion.
type IntoAttribute interface {
	IntoAttribute(cx *reactive.Scope) Attribute
}

// Char is a single character attribute value. Go's rune is an alias of
// int32, so characters need their own type to render as text rather than as
// a number.
type Char rune

// String returns the character as text.
func (c Char) String() string { return string(rune(c)) }

// Numeric lists the types Number and OptionalNumber accept.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Number returns a String attribute holding the decimal form of n.
func Number[N Numeric](n N) Attribute {
	return String(formatNumber(reflect.ValueOf(n)))
}

// OptionalNumber returns Some with the decimal form of *n, or None if n is
// nil.
func OptionalNumber[N Numeric](n *N) Attribute {
	if n == nil {
		return None()
	}
	return Some(formatNumber(reflect.ValueOf(*n)))
}

// Reactive returns an Fn attribute that calls fn and converts its result
// with Into each time it is resolved.
func Reactive[T any](cx *reactive.Scope, fn func() T) Attribute {
	if fn == nil {
		return None()
	}
	return Fn(func() Attribute {
		return Into(cx, fn())
	})
}

// Into converts v into an Attribute. It never fails:
//
//   - Attribute and IntoAttribute values convert themselves. A pointer to
//     one follows the pointer rule below.
//   - string is String, bool is Bool, numbers and Char are their text.
//   - a pointer is optional: nil is None, otherwise the pointee converted,
//     with a String result turned into Some.
//   - a func with no arguments and one result is Fn; its result is
//     converted with Into on every call.
//   - fmt.Stringer uses its String method; through a pointer the result
//     is Some, and a nil pointer is None.
//   - anything else is String(fmt.Sprint(v)).
func Into(cx *reactive.Scope, v any) Attribute {
	switch v := v.(type) {
	case nil:
		return None()
	case Attribute:
		return v
	case IntoAttribute:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return None()
			}
			// value receiver reached through a pointer
			if elem, ok := rv.Elem().Interface().(IntoAttribute); ok {
				return optional(elem.IntoAttribute(cx))
			}
		}
		return v.IntoAttribute(cx)
	case string:
		return String(v)
	case *string:
		return Option(v)
	case bool:
		return Bool(v)
	case Char:
		return String(v.String())
	case int:
		return String(strconv.Itoa(v))
	case int64:
		return String(strconv.FormatInt(v, 10))
	case uint64:
		return String(strconv.FormatUint(v, 10))
	case float64:
		return String(formatFloat(v, 64))
	case float32:
		return String(formatFloat(float64(v), 32))
	case func() Attribute:
		return Fn(v)
	case func() string:
		return Reactive(cx, v)
	case func() bool:
		return Reactive(cx, v)
	case func() any:
		return Reactive(cx, v)
	case fmt.Stringer:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return None()
			}
			return optional(String(v.String()))
		}
		return String(v.String())
	}
	return intoReflect(cx, reflect.ValueOf(v))
}

// intoReflect handles the kinds the type switch in Into does not list:
// the remaining numeric types, named scalar types, pointers and function
// types of any result.
func intoReflect(cx *reactive.Scope, rv reflect.Value) Attribute {
	switch rv.Kind() {
	case reflect.String:
		return String(rv.String())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return String(formatNumber(rv))
	case reflect.Pointer:
		if rv.IsNil() {
			return None()
		}
		return optional(Into(cx, rv.Elem().Interface()))
	case reflect.Func:
		t := rv.Type()
		if t.NumIn() != 0 || t.NumOut() != 1 || t.IsVariadic() {
			break
		}
		if rv.IsNil() {
			return None()
		}
		return Fn(func() Attribute {
			return Into(cx, rv.Call(nil)[0].Interface())
		})
	}
	return String(fmt.Sprint(rv.Interface()))
}

// optional turns a String attribute into the equivalent present Option.
// Other variants already express presence themselves.
func optional(a Attribute) Attribute {
	if a.kind == KindString {
		return Some(a.value)
	}
	return a
}

func formatNumber(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	default:
		return fmt.Sprint(rv.Interface())
	}
}

// formatFloat renders f in plain decimal notation with the fewest digits
// that round-trip: 1.0 is "1", 1e21 is "1000000000000000000000".
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}
