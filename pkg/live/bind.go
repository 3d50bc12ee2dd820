package live

import (
	"fmt"
	"log/slog"

	"github.com/vango-dev/vattr/internal/errors"
	"github.com/vango-dev/vattr/pkg/attr"
	"github.com/vango-dev/vattr/pkg/dom"
	"github.com/vango-dev/vattr/pkg/reactive"
	"github.com/vango-dev/vattr/pkg/telemetry"
	"github.com/vango-dev/vattr/pkg/view"
)

// Binder mounts views and binds their attributes. The zero value is usable
// and discards patches.
type Binder struct {
	// Sink receives a Patch for every change of a bound attribute.
	Sink Sink

	// Metrics counts patches. May be nil.
	Metrics *telemetry.Metrics

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

var defaultBinder Binder

// Bind binds a to the attribute name of node using a Binder without a sink.
func Bind(cx *reactive.Scope, node *dom.Node, name string, a attr.Attribute) {
	defaultBinder.Bind(cx, node, name, a)
}

// Mount builds the node tree of v using a Binder without a sink.
func Mount(cx *reactive.Scope, v view.View) (*dom.Node, error) {
	return defaultBinder.Mount(cx, v)
}

// Bind applies a to the attribute name of node. Static variants are applied
// once. An Fn attribute is resolved inside an effect owned by cx, so the
// node follows every signal the thunk reads until cx is disposed.
func (b *Binder) Bind(cx *reactive.Scope, node *dom.Node, name string, a attr.Attribute) {
	if a.Kind() != attr.KindFn {
		apply(node, name, a)
		return
	}

	first := true
	reactive.CreateEffect(cx, func() reactive.Cleanup {
		resolved, _ := a.Resolve()
		p, changed := apply(node, name, resolved)
		if first {
			first = false
			return nil
		}
		if changed {
			b.emit(p)
		}
		return nil
	})
}

// Mount builds the dom.Node tree of v. Attributes are bound with Bind under
// cx. A unit view mounts as its marker comment.
func (b *Binder) Mount(cx *reactive.Scope, v view.View) (*dom.Node, error) {
	switch v.Kind {
	case view.KindElement:
		if v.Element == nil {
			return nil, errors.New("E201").WithDetail("element view without representation")
		}
		node := dom.NewElement(v.Element.Tag)
		for _, a := range v.Element.Attrs {
			b.Bind(cx, node, a.Name, a.Value)
		}
		for _, child := range v.Element.Children {
			c, err := b.Mount(cx, child)
			if err != nil {
				return nil, err
			}
			node.AppendChild(c)
		}
		return node, nil

	case view.KindText:
		return dom.NewText(v.Text), nil

	case view.KindCoreComponent:
		if v.Core == nil || v.Core.Kind != view.CoreUnit {
			return nil, errors.New("E201").WithDetail("unsupported core component")
		}
		unit := v.Core.Unit
		if unit == nil {
			unit = view.NewUnitRepr()
		}
		return unit.MountableNode(), nil

	default:
		return nil, errors.New("E201").WithDetail(fmt.Sprintf("view kind %d", v.Kind))
	}
}

func (b *Binder) emit(p Patch) {
	b.Metrics.ObservePatch(string(p.Op()))
	b.logger().Debug("attribute patch",
		"node", p.Node,
		"name", p.Name,
		"op", p.Op(),
	)
	if b.Sink != nil {
		b.Sink.Send(p)
	}
}

func (b *Binder) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.Default()
}

// apply writes a resolved attribute to node and reports whether the node
// changed.
func apply(node *dom.Node, name string, a attr.Attribute) (Patch, bool) {
	p := newPatch(node, name)

	var value string
	switch a.Kind() {
	case attr.KindString:
		value = a.Value()
	case attr.KindOption:
		v, ok := a.OptionValue()
		if !ok {
			p.Remove = true
			return p, node.RemoveAttribute(name)
		}
		value = v
	case attr.KindBool:
		if !a.BoolValue() {
			p.Remove = true
			return p, node.RemoveAttribute(name)
		}
	default:
		// unresolved Fn, cannot happen after Resolve
		return p, false
	}

	p.Value = value
	if cur, ok := node.Attribute(name); ok && cur == value {
		return p, false
	}
	node.SetAttribute(name, value)
	return p, true
}
