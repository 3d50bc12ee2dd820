// Package view provides the typed view union rendered by vattr.
//
// A View is a tagged union over the kinds of renderable node: core
// components, text and elements. Anything that can become a view
// implements IntoView:
//
//	v := view.El("button",
//	    view.Attr("class", "primary"),
//	    view.Attr("disabled", func() bool { return busy.Get() }),
//	    "Save",
//	).IntoView(cx)
//
// # Core components
//
// Unit is the view of nothing. It still occupies a position in the tree:
// its representation holds an empty comment marker node, exposed through
// the Mountable interface, so siblings keep stable positions when a branch
// renders nothing.
package view
