package view

import (
	"sync"

	"github.com/vango-dev/vattr/pkg/dom"
	"github.com/vango-dev/vattr/pkg/reactive"
	"github.com/vango-dev/vattr/pkg/telemetry"
)

// UnitMarker is the content of the comment node marking a unit view.
const UnitMarker = "<() />"

// UnitRepr is the representation of the Unit core component. The zero
// value creates its marker on first use.
type UnitRepr struct {
	once    sync.Once
	comment *dom.Node
}

// NewUnitRepr creates a unit representation with a fresh marker comment.
func NewUnitRepr() *UnitRepr {
	u := &UnitRepr{}
	u.node()
	return u
}

func (u *UnitRepr) node() *dom.Node {
	u.once.Do(func() {
		if u.comment == nil {
			u.comment = dom.NewComment(UnitMarker)
		}
	})
	return u.comment
}

// MountableNode implements Mountable.
func (u *UnitRepr) MountableNode() *dom.Node { return u.node() }

// OpeningNode implements Mountable. A unit has a single node, so it is
// also the mountable node.
func (u *UnitRepr) OpeningNode() *dom.Node { return u.node() }

// String returns a debug representation.
func (u *UnitRepr) String() string {
	return "UnitRepr(<!--" + u.node().Data() + "-->)"
}

// Unit is the view of nothing.
type Unit struct{}

// IntoView implements IntoView.
func (Unit) IntoView(cx *reactive.Scope) View {
	_, span := telemetry.StartSpan(cx.Context(), UnitMarker)
	defer span.End()

	return View{
		Kind: KindCoreComponent,
		Core: &CoreComponent{Kind: CoreUnit, Unit: NewUnitRepr()},
	}
}
