package view

import (
	"fmt"

	"github.com/vango-dev/vattr/pkg/attr"
	"github.com/vango-dev/vattr/pkg/reactive"
)

// AttrSpec is an unconverted attribute: any value attr.Into accepts.
type AttrSpec struct {
	Name  string
	Value any
}

// Attr creates an attribute for El.
func Attr(name string, value any) AttrSpec {
	return AttrSpec{Name: name, Value: value}
}

// Text is a text view.
type Text string

// IntoView implements IntoView.
func (t Text) IntoView(*reactive.Scope) View {
	return View{Kind: KindText, Text: string(t)}
}

// Element is an unconverted element view. Use El to build one.
type Element struct {
	Tag      string
	Attrs    []AttrSpec
	Children []IntoView
}

// El creates an element. Arguments can be: nil, AttrSpec, []AttrSpec,
// IntoView, []IntoView, string (a Text child) or fmt.Stringer.
func El(tag string, args ...any) Element {
	e := Element{Tag: tag}
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// allows conditional arguments
		case AttrSpec:
			e.Attrs = append(e.Attrs, v)
		case []AttrSpec:
			e.Attrs = append(e.Attrs, v...)
		case IntoView:
			e.Children = append(e.Children, v)
		case []IntoView:
			e.Children = append(e.Children, v...)
		case string:
			e.Children = append(e.Children, Text(v))
		case fmt.Stringer:
			e.Children = append(e.Children, Text(v.String()))
		default:
			e.Children = append(e.Children, Text(fmt.Sprint(v)))
		}
	}
	return e
}

// IntoView converts the attributes with attr.Into and the children with
// their own IntoView, all under cx.
func (e Element) IntoView(cx *reactive.Scope) View {
	repr := &ElementRepr{
		Tag:      e.Tag,
		Attrs:    make([]NamedAttribute, 0, len(e.Attrs)),
		Children: make([]View, 0, len(e.Children)),
	}
	for _, a := range e.Attrs {
		repr.Attrs = append(repr.Attrs, NamedAttribute{
			Name:  a.Name,
			Value: attr.Into(cx, a.Value),
		})
	}
	for _, child := range e.Children {
		repr.Children = append(repr.Children, child.IntoView(cx))
	}
	return View{Kind: KindElement, Element: repr}
}
