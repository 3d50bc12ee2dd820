package attr

import (
	"fmt"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindString, "String"},
		{KindFn, "Fn"},
		{KindOption, "Option"},
		{KindBool, "Bool"},
		{Kind(200), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAsValueString(t *testing.T) {
	tests := []struct {
		name string
		attr Attribute
		want string
	}{
		{"string", String("s"), `a="s"`},
		{"empty string", String(""), `a=""`},
		{"zero value", Attribute{}, `a=""`},
		{"bool true", Bool(true), `a`},
		{"bool false", Bool(false), ``},
		{"some", Some("v"), `a="v"`},
		{"some empty", Some(""), `a=""`},
		{"none", None(), ``},
		{"fn string", Fn(func() Attribute { return String("x") }), `a="x"`},
		{"fn none", Fn(func() Attribute { return None() }), ``},
		{"fn bool", Fn(func() Attribute { return Bool(true) }), `a`},
		{"nil fn", Fn(nil), ``},
		{"quote not escaped", String(`say "hi"`), `a="say "hi""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.attr.AsValueString("a"); got != tt.want {
				t.Errorf("AsValueString(a) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOptionFromPointer(t *testing.T) {
	v := "v"
	if got := Option(&v).AsValueString("a"); got != `a="v"` {
		t.Errorf("Option(&v) = %q", got)
	}
	if got := Option(nil).AsValueString("a"); got != "" {
		t.Errorf("Option(nil) = %q, want empty", got)
	}
}

func TestGroundVariantsIdempotent(t *testing.T) {
	for _, a := range []Attribute{String("x"), Some("y"), None(), Bool(true), Bool(false)} {
		first := a.AsValueString("n")
		second := a.AsValueString("n")
		if first != second {
			t.Errorf("%v: %q then %q", a, first, second)
		}
	}
}

func TestNestedFnCollapses(t *testing.T) {
	terminal := String("x")
	chain := Fn(func() Attribute {
		return Fn(func() Attribute {
			return terminal
		})
	})

	if got, want := chain.AsValueString("a"), terminal.AsValueString("a"); got != want {
		t.Errorf("nested = %q, want %q", got, want)
	}

	r, depth := chain.Resolve()
	if !r.Equal(terminal) {
		t.Errorf("Resolve() = %v, want %v", r, terminal)
	}
	if depth != 2 {
		t.Errorf("depth = %d, want 2", depth)
	}
	if chain.Kind() != KindFn {
		t.Error("Resolve must not modify the receiver")
	}
}

func TestDeepChain(t *testing.T) {
	// Deeper than WarnDepth: resolution completes and logs once.
	const n = WarnDepth + 10
	a := String("end")
	for i := 0; i < n; i++ {
		inner := a
		a = Fn(func() Attribute { return inner })
	}

	r, depth := a.Resolve()
	if depth != n {
		t.Errorf("depth = %d, want %d", depth, n)
	}
	if r.Value() != "end" {
		t.Errorf("Value() = %q, want end", r.Value())
	}
}

func TestFnCalledOnEveryResolve(t *testing.T) {
	calls := 0
	a := Fn(func() Attribute {
		calls++
		return String(fmt.Sprint(calls))
	})

	if got := a.AsValueString("n"); got != `n="1"` {
		t.Errorf("first = %q", got)
	}
	if got := a.AsValueString("n"); got != `n="2"` {
		t.Errorf("second = %q", got)
	}
}

func TestEqual(t *testing.T) {
	fn := Fn(func() Attribute { return String("x") })

	tests := []struct {
		name string
		a, b Attribute
		want bool
	}{
		{"same string", String("x"), String("x"), true},
		{"different string", String("x"), String("y"), false},
		{"string vs bool", String("x"), Bool(true), false},
		{"string vs some", String("x"), Some("x"), false},
		{"some", Some("x"), Some("x"), true},
		{"none", None(), None(), true},
		{"some vs none", Some(""), None(), false},
		{"bool", Bool(false), Bool(false), true},
		{"bool differs", Bool(true), Bool(false), false},
		{"fn self", fn, fn, false},
		{"fn vs string", fn, String("x"), false},
		{"string vs fn", String("x"), fn, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDebugString(t *testing.T) {
	tests := []struct {
		attr Attribute
		want string
	}{
		{String("x"), `String("x")`},
		{Fn(func() Attribute { return String("secret") }), `Fn`},
		{Some("x"), `Option(Some("x"))`},
		{None(), `Option(None)`},
		{Bool(true), `Bool(true)`},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := fmt.Sprintf("%v", tt.attr); got != tt.want {
				t.Errorf("%%v = %q, want %q", got, tt.want)
			}
			if got := fmt.Sprintf("%#v", tt.attr); got != "attr."+tt.want {
				t.Errorf("%%#v = %q, want %q", got, "attr."+tt.want)
			}
		})
	}
}

func TestAccessors(t *testing.T) {
	if v, ok := Some("x").OptionValue(); !ok || v != "x" {
		t.Errorf("Some.OptionValue() = %q, %v", v, ok)
	}
	if _, ok := None().OptionValue(); ok {
		t.Error("None.OptionValue() should be absent")
	}
	if _, ok := String("x").OptionValue(); ok {
		t.Error("String.OptionValue() should be absent")
	}
	if !Bool(true).BoolValue() || String("true").BoolValue() {
		t.Error("BoolValue mismatch")
	}
	if String("x").Func() != nil {
		t.Error("String.Func() should be nil")
	}
	if Fn(func() Attribute { return None() }).Func() == nil {
		t.Error("Fn.Func() should not be nil")
	}
}

func TestIsPresent(t *testing.T) {
	tests := []struct {
		attr Attribute
		want bool
	}{
		{String(""), true},
		{Some(""), true},
		{None(), false},
		{Bool(true), true},
		{Bool(false), false},
		{Fn(func() Attribute { return None() }), false},
	}
	for _, tt := range tests {
		if got := tt.attr.IsPresent(); got != tt.want {
			t.Errorf("%v.IsPresent() = %v, want %v", tt.attr, got, tt.want)
		}
	}
}
