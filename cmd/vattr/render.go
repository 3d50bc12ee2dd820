package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vango-dev/vattr/internal/errors"
	"github.com/vango-dev/vattr/pkg/attr"
	"github.com/vango-dev/vattr/pkg/publish"
	"github.com/vango-dev/vattr/pkg/reactive"
	"github.com/vango-dev/vattr/pkg/render"
	"github.com/vango-dev/vattr/pkg/telemetry"
	"github.com/vango-dev/vattr/pkg/view"
)

func renderCmd(a *app) *cobra.Command {
	var (
		file       string
		out        string
		tag        string
		text       string
		page       bool
		pretty     bool
		publishCfg bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render an element and optionally publish it",
		Long: `Render an element whose attributes come from a JSON object.

Without --file a built-in demo set of attributes is used. The HTML is
written to stdout unless --out names a file or an s3://bucket/key URL.

Examples:
  vattr render
  vattr render --file attrs.json --tag button --text Save
  vattr render --page --out dist/index.html
  vattr render --page --out s3://my-site/index.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cx := reactive.NewScope(nil).WithContext(ctx)
			defer cx.Dispose()

			var specs []view.AttrSpec
			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return errors.New("E400").WithDetail("cannot open " + file).Wrap(err)
				}
				specs, err = decodeAttributes(cx, f)
				f.Close()
				if err != nil {
					return err
				}
			} else {
				specs = demoAttributes(cx)
			}

			cfg := a.cfg.Render
			renderer := render.NewRenderer(render.RendererConfig{
				Pretty:           pretty || cfg.Pretty,
				Indent:           cfg.Indent,
				EscapeAttributes: cfg.EscapeAttributes,
				Metrics: telemetry.New(
					telemetry.WithNamespace(a.cfg.Metrics.Namespace),
					telemetry.WithSubsystem(a.cfg.Metrics.Subsystem),
					telemetry.WithRegistry(prometheus.NewRegistry()),
				),
			})

			var content any
			if text != "" {
				content = text
			}
			body := view.El(tag, specs, content).IntoView(cx)

			var buf bytes.Buffer
			var err error
			if page {
				err = renderer.RenderPageContext(ctx, &buf, render.PageData{Title: "vattr", Body: body})
			} else {
				err = renderer.RenderToWriterContext(ctx, &buf, body)
				buf.WriteString("\n")
			}
			if err != nil {
				return err
			}

			if publishCfg && out == "" {
				out = a.cfg.Publish.Target
				if out == "" {
					return errors.New("E400").
						WithDetail("--publish needs publish.target in vattr.json").
						WithSuggestion("Pass --out or set publish.target")
				}
			}
			if out == "" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}

			target, err := publish.ParseTarget(out)
			if err != nil {
				return err
			}
			store, key, err := publish.Open(target, publish.Options{
				Region:   a.cfg.Publish.Region,
				Endpoint: a.cfg.Publish.Endpoint,
			})
			if err != nil {
				return err
			}
			location, err := store.Put(ctx, key, buf.Bytes())
			if err != nil {
				return err
			}
			a.logger.Info("published", "location", location, "bytes", buf.Len())
			success("Published %s", location)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON object of attributes")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file or s3://bucket/key (default stdout)")
	cmd.Flags().StringVar(&tag, "tag", "div", "Element tag")
	cmd.Flags().StringVar(&text, "text", "", "Element text content")
	cmd.Flags().BoolVar(&page, "page", false, "Render a complete HTML document")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the output")
	cmd.Flags().BoolVar(&publishCfg, "publish", false, "Publish to publish.target from vattr.json")

	return cmd
}

// demoAttributes shows every attribute variant, including a nested
// reactive one.
func demoAttributes(cx *reactive.Scope) []view.AttrSpec {
	var title *string
	label := "demo"
	return []view.AttrSpec{
		view.Attr("id", "demo"),
		view.Attr("aria-label", &label),
		view.Attr("title", title),
		view.Attr("hidden", false),
		view.Attr("data-ready", true),
		view.Attr("data-version", func() attr.Attribute {
			return attr.Reactive(cx, func() string { return fmt.Sprintf("v%s", version) })
		}),
	}
}
