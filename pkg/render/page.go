package render

import (
	"context"
	"io"

	"github.com/vango-dev/vattr/internal/errors"
	"github.com/vango-dev/vattr/pkg/view"
)

// PageData describes a complete HTML document.
type PageData struct {
	// Title is the document title. Escaped.
	Title string

	// Lang is the html lang attribute. Defaults to "en".
	Lang string

	// Body is rendered inside <body>.
	Body view.View

	// Scripts are script URLs appended to the end of the body.
	Scripts []string

	// InlineScript is raw JavaScript appended after Scripts. Not escaped.
	InlineScript string
}

// RenderPage writes a complete HTML document to w.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	return r.RenderPageContext(context.Background(), w, page)
}

// RenderPageContext is RenderPage with a parent context for tracing.
func (r *Renderer) RenderPageContext(ctx context.Context, w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	ew := &errWriter{w: w}
	ew.write("<!DOCTYPE html>\n")
	ew.write(`<html lang="` + escapeAttr(lang) + `">` + "\n")
	ew.write("<head>\n")
	ew.write(`<meta charset="utf-8">` + "\n")
	ew.write(`<meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")
	if page.Title != "" {
		ew.write("<title>" + escapeHTML(page.Title) + "</title>\n")
	}
	ew.write("</head>\n<body>\n")
	if ew.err != nil {
		return errors.New("E200").Wrap(ew.err)
	}

	if page.Body.Kind != 0 {
		if err := r.RenderToWriterContext(ctx, w, page.Body); err != nil {
			return err
		}
		ew.write("\n")
	}

	for _, src := range page.Scripts {
		ew.write(`<script src="` + escapeAttr(src) + `"></script>` + "\n")
	}
	if page.InlineScript != "" {
		ew.write("<script>" + page.InlineScript + "</script>\n")
	}
	ew.write("</body>\n</html>\n")
	if ew.err != nil {
		return errors.New("E200").Wrap(ew.err)
	}
	return nil
}
