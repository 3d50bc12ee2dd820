package view

import (
	"github.com/vango-dev/vattr/pkg/attr"
	"github.com/vango-dev/vattr/pkg/dom"
	"github.com/vango-dev/vattr/pkg/reactive"
)

// Kind is the view union discriminator.
type Kind uint8

const (
	KindCoreComponent Kind = iota + 1 // built-in component, see CoreComponent
	KindText                          // escaped text
	KindElement                       // HTML element
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindCoreComponent:
		return "CoreComponent"
	case KindText:
		return "Text"
	case KindElement:
		return "Element"
	default:
		return "Unknown"
	}
}

// CoreKind identifies a built-in component.
type CoreKind uint8

const (
	CoreUnit CoreKind = iota + 1 // renders nothing, see Unit
)

// String returns the string representation of the CoreKind.
func (k CoreKind) String() string {
	switch k {
	case CoreUnit:
		return "Unit"
	default:
		return "Unknown"
	}
}

// View is a renderable node. Exactly one payload field is set, matching
// Kind.
type View struct {
	Kind    Kind
	Core    *CoreComponent // KindCoreComponent
	Text    string         // KindText
	Element *ElementRepr   // KindElement
}

// IntoView implements IntoView; a View converts to itself.
func (v View) IntoView(*reactive.Scope) View { return v }

// CoreComponent is a built-in component.
type CoreComponent struct {
	Kind CoreKind
	Unit *UnitRepr // CoreUnit
}

// ElementRepr is the representation of an element view. Attributes keep
// their declaration order.
type ElementRepr struct {
	Tag      string
	Attrs    []NamedAttribute
	Children []View
}

// NamedAttribute pairs an attribute name with its value.
type NamedAttribute struct {
	Name  string
	Value attr.Attribute
}

// IntoView is implemented by anything that can become a View.
type IntoView interface {
	IntoView(cx *reactive.Scope) View
}

// Mountable is implemented by view representations backed by a dom node.
type Mountable interface {
	// MountableNode returns the node to insert into the parent.
	MountableNode() *dom.Node
	// OpeningNode returns the first node of the view's range.
	OpeningNode() *dom.Node
}
