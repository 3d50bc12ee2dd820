// Package render provides server-side rendering (SSR) of views.
//
// The renderer turns a view.View into HTML. Attributes are written with
// attr.Attribute.AsValueString, so every attribute variant renders exactly
// as its own contract says: name="value" for strings and present options,
// a bare name for true booleans, nothing at all for absent options and
// false booleans. Fn attributes are resolved at the moment of rendering and
// do not subscribe to anything.
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.Render(cx, view.El("p", view.Attr("hidden", false), "hi"))
//	// <p>hi</p>
//
// # Escaping
//
// Text content is always escaped. Attribute values are written verbatim
// unless RendererConfig.EscapeAttributes is set; enable it whenever values
// can contain user input.
//
// # Full Page Rendering
//
// RenderPage writes a complete document around a body view:
//
//	err := renderer.RenderPage(w, render.PageData{Title: "Demo", Body: body})
package render
