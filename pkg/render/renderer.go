package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/vango-dev/vattr/internal/errors"
	"github.com/vango-dev/vattr/pkg/attr"
	"github.com/vango-dev/vattr/pkg/reactive"
	"github.com/vango-dev/vattr/pkg/telemetry"
	"github.com/vango-dev/vattr/pkg/view"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// EscapeAttributes escapes String and Option values before they are
	// formatted.
	EscapeAttributes bool

	// Metrics receives attribute and view counts. May be nil.
	Metrics *telemetry.Metrics
}

// Renderer renders views to HTML. It holds no per-render state and may be
// shared between goroutines.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// Render converts iv under cx and renders the result to a string.
func (r *Renderer) Render(cx *reactive.Scope, iv view.IntoView) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriterContext(cx.Context(), &buf, iv.IntoView(cx)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToString renders v to a string.
func (r *Renderer) RenderToString(v view.View) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams v to w.
func (r *Renderer) RenderToWriter(w io.Writer, v view.View) error {
	return r.RenderToWriterContext(context.Background(), w, v)
}

// RenderToWriterContext streams v to w inside a span that is a child of ctx.
func (r *Renderer) RenderToWriterContext(ctx context.Context, w io.Writer, v view.View) error {
	_, span := telemetry.StartSpan(ctx, "render", attribute.String("vattr.view_kind", v.Kind.String()))
	defer span.End()
	defer r.config.Metrics.ObserveRender(time.Now())

	ew := &errWriter{w: w}
	if err := r.renderView(ew, v, 0, false); err != nil {
		span.RecordError(err)
		return err
	}
	if ew.err != nil {
		span.RecordError(ew.err)
		return errors.New("E200").Wrap(ew.err)
	}
	return nil
}

// errWriter remembers the first write error so the render functions can
// write unconditionally.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) write(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

// renderView dispatches on the view kind. block is true when the view is
// one of several block-level siblings in pretty mode.
func (r *Renderer) renderView(w *errWriter, v view.View, depth int, block bool) error {
	r.config.Metrics.ObserveView(v.Kind.String())

	switch v.Kind {
	case view.KindElement:
		if v.Element == nil {
			return errors.New("E201").WithDetail("element view without representation")
		}
		return r.renderElement(w, v.Element, depth, block)
	case view.KindText:
		r.line(w, depth, block, escapeHTML(v.Text))
		return nil
	case view.KindCoreComponent:
		return r.renderCore(w, v.Core, depth, block)
	default:
		return errors.New("E201").WithDetail(fmt.Sprintf("view kind %d", v.Kind))
	}
}

func (r *Renderer) renderCore(w *errWriter, c *view.CoreComponent, depth int, block bool) error {
	if c == nil {
		return errors.New("E201").WithDetail("core component view without representation")
	}
	switch c.Kind {
	case view.CoreUnit:
		marker := view.UnitMarker
		if c.Unit != nil {
			marker = c.Unit.OpeningNode().Data()
		}
		r.line(w, depth, block, "<!--"+escapeComment(marker)+"-->")
		return nil
	default:
		return errors.New("E201").WithDetail(fmt.Sprintf("core component kind %d", c.Kind))
	}
}

// line writes an inline fragment, on its own indented line in block mode.
func (r *Renderer) line(w *errWriter, depth int, block bool, s string) {
	if block {
		r.indent(w, depth)
	}
	w.write(s)
	if block {
		w.write("\n")
	}
}

func (r *Renderer) renderElement(w *errWriter, el *view.ElementRepr, depth int, block bool) error {
	if block {
		r.indent(w, depth)
	}

	w.write("<")
	w.write(el.Tag)
	for _, a := range el.Attrs {
		if s := r.renderAttribute(a); s != "" {
			w.write(" ")
			w.write(s)
		}
	}
	w.write(">")

	if voidElements[strings.ToLower(el.Tag)] {
		if r.config.Pretty {
			w.write("\n")
		}
		return nil
	}

	childBlock := r.config.Pretty && hasBlockChild(el.Children)
	if childBlock {
		w.write("\n")
	}
	for _, child := range el.Children {
		if err := r.renderView(w, child, depth+1, childBlock); err != nil {
			return err
		}
	}
	if childBlock {
		r.indent(w, depth)
	}

	w.write("</")
	w.write(el.Tag)
	w.write(">")
	if r.config.Pretty {
		w.write("\n")
	}
	return nil
}

// renderAttribute resolves a and returns its HTML form, "" when the
// attribute is omitted. Resolution is untracked so rendering inside an
// effect does not subscribe it to the signals the attribute reads.
func (r *Renderer) renderAttribute(a view.NamedAttribute) string {
	var (
		resolved attr.Attribute
		depth    int
	)
	reactive.Untrack(func() {
		resolved, depth = a.Value.Resolve()
	})
	r.config.Metrics.ObserveAttribute(a.Value.Kind().String(), depth, resolved.IsPresent())

	if r.config.EscapeAttributes {
		switch resolved.Kind() {
		case attr.KindString:
			resolved = attr.String(escapeAttr(resolved.Value()))
		case attr.KindOption:
			if v, ok := resolved.OptionValue(); ok {
				resolved = attr.Some(escapeAttr(v))
			}
		}
	}
	return resolved.AsValueString(a.Name)
}

func (r *Renderer) indent(w *errWriter, depth int) {
	if !r.config.Pretty {
		return
	}
	for i := 0; i < depth; i++ {
		w.write(r.config.Indent)
	}
}

func hasBlockChild(children []view.View) bool {
	for _, c := range children {
		if c.Kind == view.KindElement || c.Kind == view.KindCoreComponent {
			return true
		}
	}
	return false
}

// voidElements cannot have children and have no closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}
