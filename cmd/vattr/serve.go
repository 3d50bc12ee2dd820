package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/vango-dev/vattr/internal/config"
	"github.com/vango-dev/vattr/internal/errors"
	"github.com/vango-dev/vattr/pkg/live"
	"github.com/vango-dev/vattr/pkg/reactive"
	"github.com/vango-dev/vattr/pkg/render"
	"github.com/vango-dev/vattr/pkg/telemetry"
	"github.com/vango-dev/vattr/pkg/view"
)

const livePath = "/live"

func serveCmd(a *app) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live attribute demo",
		Long: `Serve a page whose attributes follow a ticking signal.

Every tick the signal changes, bound attributes are resolved again and
the changes are pushed to the browser over a WebSocket.

Routes:
  /         the demo page
  /live     WebSocket attribute patches
  /metrics  Prometheus metrics

Examples:
  vattr serve
  vattr serve --port=9000 --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port > 0 {
				a.cfg.Serve.Port = port
			}
			if host != "" {
				a.cfg.Serve.Host = host
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return runServe(cmd.Context(), a.cfg, a.logger)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from vattr.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from vattr.json)")

	return cmd
}

func runServe(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	d, err := newDemo(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer d.close()

	srv := &http.Server{
		Addr:              cfg.ServeAddress(),
		Handler:           d.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	printBanner()
	info("Serving on http://%s", cfg.ServeAddress())
	info("Tick every %s", cfg.TickInterval())
	fmt.Println()

	go d.tick(ctx, cfg.TickInterval())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return errors.New("E401").Wrap(err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("E401").Wrap(err)
	}
	return nil
}

// demo is the state behind `vattr serve`: one mounted view whose
// attributes read the count signal.
type demo struct {
	cx       *reactive.Scope
	count    *reactive.Signal[int]
	body     view.View
	hub      *live.Hub
	registry *prometheus.Registry
	metrics  *telemetry.Metrics
	renderer *render.Renderer
	logger   *slog.Logger
}

func newDemo(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*demo, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := telemetry.New(
		telemetry.WithNamespace(cfg.Metrics.Namespace),
		telemetry.WithSubsystem(cfg.Metrics.Subsystem),
		telemetry.WithRegistry(registry),
	)

	cx := reactive.NewScope(nil).WithContext(ctx)
	d := &demo{
		cx:       cx,
		count:    reactive.NewSignal(cx, 0),
		hub:      live.NewHub(logger),
		registry: registry,
		metrics:  metrics,
		logger:   logger,
		renderer: render.NewRenderer(render.RendererConfig{
			Pretty:           cfg.Render.Pretty,
			Indent:           cfg.Render.Indent,
			EscapeAttributes: cfg.Render.EscapeAttributes,
			Metrics:          metrics,
		}),
	}

	d.body = view.El("div",
		view.Attr("id", "counter"),
		view.Attr("data-count", d.count.Get),
		view.Attr("data-odd", func() bool { return d.count.Get()%2 == 1 }),
		view.Attr("title", func() *string {
			if d.count.Get()%3 != 0 {
				return nil
			}
			s := fmt.Sprintf("%d is a multiple of three", d.count.Get())
			return &s
		}),
		view.El("p", "Open the inspector: this element's attributes change every tick."),
		view.Unit{},
	).IntoView(cx)

	binder := &live.Binder{Sink: d.hub, Metrics: metrics, Logger: logger}
	if _, err := binder.Mount(cx, d.body); err != nil {
		cx.Dispose()
		return nil, err
	}
	return d, nil
}

func (d *demo) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(d.metrics.Middleware)

	r.Get("/", d.handlePage)
	r.Handle(livePath, d.hub)
	r.Handle("/metrics", promhttp.HandlerFor(d.registry, promhttp.HandlerOpts{}))
	return r
}

func (d *demo) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := d.renderer.RenderPageContext(r.Context(), w, render.PageData{
		Title:        "vattr live",
		Body:         d.body,
		InlineScript: live.ClientScript(livePath),
	})
	if err != nil {
		d.logger.Error("render failed", "error", err, "request_id", middleware.GetReqID(r.Context()))
	}
}

func (d *demo) tick(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			d.count.Update(func(n int) int { return n + 1 })
		}
	}
}

func (d *demo) close() {
	d.cx.Dispose()
	d.hub.Close()
}
