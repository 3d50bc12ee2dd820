package attr

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/vango-dev/vattr/pkg/reactive"
)

// Kind is the attribute variant discriminator.
type Kind uint8

const (
	KindString Kind = iota // name="value"
	KindFn                 // computed on demand
	KindOption             // name="value" or removed
	KindBool               // bare name or removed
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindFn:
		return "Fn"
	case KindOption:
		return "Option"
	case KindBool:
		return "Bool"
	default:
		return "Unknown"
	}
}

// WarnDepth is the number of chained Fn calls after which Resolve logs a
// warning. Resolution itself is never cut short: a chain that does not end
// is a bug in the function that built it.
const WarnDepth = 1024

// Attribute is the value of an HTML attribute. The zero value is String("").
//
// Attributes are immutable. The function held by an Fn attribute is shared
// by every copy of the attribute.
type Attribute struct {
	kind  Kind
	value string           // KindString, KindOption when present
	some  bool             // KindOption
	flag  bool             // KindBool
	fn    func() Attribute // KindFn
}

// String returns a fixed attribute value.
func String(value string) Attribute {
	return Attribute{kind: KindString, value: value}
}

// Fn returns an attribute computed by fn each time it is resolved. A nil fn
// yields None().
func Fn(fn func() Attribute) Attribute {
	if fn == nil {
		return None()
	}
	return Attribute{kind: KindFn, fn: fn}
}

// Option returns an optional attribute: present with *value, or absent if
// value is nil.
func Option(value *string) Attribute {
	if value == nil {
		return None()
	}
	return Some(*value)
}

// Some returns a present optional attribute.
func Some(value string) Attribute {
	return Attribute{kind: KindOption, value: value, some: true}
}

// None returns an absent optional attribute.
func None() Attribute {
	return Attribute{kind: KindOption}
}

// Bool returns a boolean attribute.
func Bool(include bool) Attribute {
	return Attribute{kind: KindBool, flag: include}
}

// Kind returns the variant of a.
func (a Attribute) Kind() Kind { return a.kind }

// Value returns the text of a String attribute or of a present Option.
// It is "" for every other variant.
func (a Attribute) Value() string { return a.value }

// OptionValue returns the text of an Option attribute and whether it is
// present. It returns "", false for other variants.
func (a Attribute) OptionValue() (string, bool) {
	if a.kind != KindOption {
		return "", false
	}
	return a.value, a.some
}

// BoolValue returns the flag of a Bool attribute, false otherwise.
func (a Attribute) BoolValue() bool { return a.kind == KindBool && a.flag }

// Func returns the function of an Fn attribute, nil otherwise.
func (a Attribute) Func() func() Attribute { return a.fn }

// Resolve runs Fn attributes until a non-Fn variant is reached and returns
// it together with the number of calls made. Non-Fn attributes are returned
// unchanged with depth 0. The receiver is never modified.
func (a Attribute) Resolve() (Attribute, int) {
	depth := 0
	for a.kind == KindFn {
		a = a.fn()
		depth++
		if depth == WarnDepth {
			slog.Warn("attribute function chain is unusually deep",
				"depth", depth)
		}
	}
	return a, depth
}

// IsPresent reports whether the resolved attribute is written at all.
// It is false for an absent Option and for Bool(false).
func (a Attribute) IsPresent() bool {
	r, _ := a.Resolve()
	switch r.kind {
	case KindOption:
		return r.some
	case KindBool:
		return r.flag
	default:
		return true
	}
}

// AsValueString converts the attribute to its HTML form at this moment, for
// rendering on the server:
//
//	String("x")  -> name="x"
//	Some("x")    -> name="x"
//	None()       -> ""
//	Bool(true)   -> name
//	Bool(false)  -> ""
//
// Fn attributes are resolved first. The value is not escaped.
func (a Attribute) AsValueString(name string) string {
	r, _ := a.Resolve()
	switch r.kind {
	case KindString:
		return name + `="` + r.value + `"`
	case KindOption:
		if !r.some {
			return ""
		}
		return name + `="` + r.value + `"`
	case KindBool:
		if r.flag {
			return name
		}
		return ""
	default:
		return ""
	}
}

// Equal compares two attributes structurally. Fn attributes are never
// equal to anything, themselves included.
func (a Attribute) Equal(b Attribute) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindString:
		return a.value == b.value
	case KindOption:
		return a.some == b.some && a.value == b.value
	case KindBool:
		return a.flag == b.flag
	default:
		return false
	}
}

// String returns a debug representation such as String("x") or
// Option(None). The function of an Fn attribute is shown only as Fn.
func (a Attribute) String() string {
	switch a.kind {
	case KindString:
		return "String(" + strconv.Quote(a.value) + ")"
	case KindFn:
		return "Fn"
	case KindOption:
		if !a.some {
			return "Option(None)"
		}
		return "Option(Some(" + strconv.Quote(a.value) + "))"
	case KindBool:
		return "Bool(" + strconv.FormatBool(a.flag) + ")"
	default:
		return fmt.Sprintf("Attribute(%d)", a.kind)
	}
}

// GoString implements fmt.GoStringer so %#v shows the same form as %v.
func (a Attribute) GoString() string {
	return "attr." + a.String()
}

// IntoAttribute implements IntoAttribute; an Attribute converts to itself.
func (a Attribute) IntoAttribute(_ *reactive.Scope) Attribute {
	return a
}
