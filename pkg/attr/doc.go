// Package attr provides the value model for HTML attributes.
//
// An Attribute is one of four variants:
//
//   - String: a fixed value, rendered as name="value".
//   - Fn: a (presumably reactive) function producing another Attribute. A
//     live binding runs it inside an effect to patch the attribute when its
//     dependencies change; static rendering calls it once.
//   - Option: a value that is either present (rendered like String) or
//     absent (the attribute is removed).
//   - Bool: true renders the bare attribute name, false removes it.
//
// # Conversion
//
// Into converts arbitrary Go values into attributes. Strings, booleans and
// all numeric types are built in; pointers are optional values, nil meaning
// absent. Zero-argument functions become Fn attributes whose result is
// converted again on every call, so a function returning a function nests:
//
//	a := attr.Into(cx, func() any {
//	    return func() string { return theme.Get() }
//	})
//	a.AsValueString("class") // class="dark"
//
// User types participate by implementing IntoAttribute. Reactive is the
// typed spelling of the function rule.
//
// # Rendering
//
// AsValueString flattens an attribute to its textual form for server-side
// rendering, running Fn chains to completion first. Values are written
// verbatim: callers must escape or reject values containing '"'.
package attr
