package live

import "github.com/vango-dev/vattr/pkg/dom"

// Op is the kind of change a Patch describes.
type Op string

const (
	OpSet    Op = "set"
	OpRemove Op = "remove"
)

// Patch describes a single attribute change on a mounted node.
type Patch struct {
	Node   uint64 `json:"node"`
	Target string `json:"target,omitempty"` // id attribute of the node, if any
	Name   string `json:"name"`
	Value  string `json:"value,omitempty"`
	Remove bool   `json:"remove,omitempty"`
}

// Op returns the operation of the patch.
func (p Patch) Op() Op {
	if p.Remove {
		return OpRemove
	}
	return OpSet
}

func newPatch(node *dom.Node, name string) Patch {
	p := Patch{Node: node.ID(), Name: name}
	if id, ok := node.Attribute("id"); ok {
		p.Target = id
	}
	return p
}

// Sink receives patches.
type Sink interface {
	Send(p Patch)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Patch)

// Send implements Sink.
func (f SinkFunc) Send(p Patch) { f(p) }
