package dom

import "testing"

func TestNodeTypeString(t *testing.T) {
	tests := []struct {
		typ  NodeType
		want string
	}{
		{ElementNode, "Element"},
		{TextNode, "Text"},
		{CommentNode, "Comment"},
		{NodeType(0), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAttributes(t *testing.T) {
	n := NewElement("input")
	n.SetAttribute("type", "text")
	n.SetAttribute("disabled", "")
	n.SetAttribute("type", "email")

	attrs := n.Attributes()
	if len(attrs) != 2 {
		t.Fatalf("len(Attributes()) = %d, want 2", len(attrs))
	}
	if attrs[0] != (Attr{Name: "type", Value: "email"}) {
		t.Errorf("attrs[0] = %+v, want type=email in first position", attrs[0])
	}

	if v, ok := n.Attribute("disabled"); !ok || v != "" {
		t.Errorf("Attribute(disabled) = %q, %v; want \"\", true", v, ok)
	}
	if !n.RemoveAttribute("disabled") {
		t.Error("RemoveAttribute(disabled) = false, want true")
	}
	if n.RemoveAttribute("disabled") {
		t.Error("second RemoveAttribute(disabled) = true, want false")
	}
	if _, ok := n.Attribute("disabled"); ok {
		t.Error("disabled should be gone")
	}
}

func TestChildren(t *testing.T) {
	a := NewElement("div")
	b := NewElement("div")
	c := NewText("hi")

	a.AppendChild(c)
	if c.Parent() != a {
		t.Fatal("parent should be a")
	}
	b.AppendChild(c)
	if c.Parent() != b {
		t.Error("parent should move to b")
	}
	if len(a.Children()) != 0 {
		t.Error("a should have no children after move")
	}
	if !b.RemoveChild(c) || c.Parent() != nil {
		t.Error("RemoveChild should detach c")
	}
}

func TestConstructors(t *testing.T) {
	c := NewComment("<() />")
	if c.Type() != CommentNode || c.Data() != "<() />" || c.Tag() != "" {
		t.Errorf("unexpected comment node: %v %q %q", c.Type(), c.Data(), c.Tag())
	}
	if NewText("x").ID() == c.ID() {
		t.Error("IDs should be unique")
	}
}
