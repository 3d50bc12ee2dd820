package dom

import (
	"sync"
	"sync/atomic"
)

// NodeType is the node type discriminator.
type NodeType uint8

const (
	ElementNode NodeType = iota + 1
	TextNode
	CommentNode
)

// String returns the string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case CommentNode:
		return "Comment"
	default:
		return "Unknown"
	}
}

var nodeIDs uint64

// Attr is a single attribute on an element. A boolean attribute that is
// present has an empty Value.
type Attr struct {
	Name  string
	Value string
}

// Node is an element, text or comment node.
type Node struct {
	id   uint64
	typ  NodeType
	tag  string // elements only
	data string // text and comment only

	mu       sync.RWMutex
	attrs    []Attr
	parent   *Node
	children []*Node
}

func newNode(typ NodeType) *Node {
	return &Node{id: atomic.AddUint64(&nodeIDs, 1), typ: typ}
}

// NewElement creates a detached element node.
func NewElement(tag string) *Node {
	n := newNode(ElementNode)
	n.tag = tag
	return n
}

// NewText creates a detached text node.
func NewText(data string) *Node {
	n := newNode(TextNode)
	n.data = data
	return n
}

// NewComment creates a detached comment node.
func NewComment(data string) *Node {
	n := newNode(CommentNode)
	n.data = data
	return n
}

// ID returns the node's unique identifier.
func (n *Node) ID() uint64 { return n.id }

// Type returns the node type.
func (n *Node) Type() NodeType { return n.typ }

// Tag returns the element tag name, or "" for non-elements.
func (n *Node) Tag() string { return n.tag }

// Data returns the text or comment content.
func (n *Node) Data() string { return n.data }

// SetAttribute sets name to value, keeping the position of an existing
// attribute with the same name.
func (n *Node) SetAttribute(name, value string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := range n.attrs {
		if n.attrs[i].Name == name {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, Attr{Name: name, Value: value})
}

// RemoveAttribute removes name. It reports whether the attribute existed.
func (n *Node) RemoveAttribute(name string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := range n.attrs {
		if n.attrs[i].Name == name {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			return true
		}
	}
	return false
}

// Attribute returns the value of name and whether it is present.
func (n *Node) Attribute(name string) (string, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, a := range n.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attributes returns a copy of the attributes in insertion order.
func (n *Node) Attributes() []Attr {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]Attr, len(n.attrs))
	copy(out, n.attrs)
	return out
}

// AppendChild attaches child as the last child of n, detaching it from any
// previous parent first.
func (n *Node) AppendChild(child *Node) {
	if old := child.Parent(); old != nil {
		old.RemoveChild(child)
	}
	n.mu.Lock()
	n.children = append(n.children, child)
	n.mu.Unlock()

	child.mu.Lock()
	child.parent = n
	child.mu.Unlock()
}

// RemoveChild detaches child from n. It reports whether child was found.
func (n *Node) RemoveChild(child *Node) bool {
	n.mu.Lock()
	found := false
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			found = true
			break
		}
	}
	n.mu.Unlock()

	if found {
		child.mu.Lock()
		child.parent = nil
		child.mu.Unlock()
	}
	return found
}

// Parent returns the parent node, or nil if detached.
func (n *Node) Parent() *Node {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.parent
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}
