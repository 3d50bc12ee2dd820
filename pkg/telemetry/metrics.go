package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config configures Metrics.
type Config struct {
	// Namespace is the metrics namespace (default: "vattr").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// DepthBuckets are the histogram buckets for Fn chain depth.
	DepthBuckets []float64

	// DurationBuckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	DurationBuckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures Metrics.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace:       "vattr",
		DepthBuckets:    []float64{0, 1, 2, 4, 8, 16, 64, 1024},
		DurationBuckets: prometheus.DefBuckets,
		Registry:        prometheus.DefaultRegisterer,
	}
}

// Metrics holds the collectors. Methods on a nil *Metrics do nothing.
type Metrics struct {
	attributesResolved *prometheus.CounterVec
	fnDepth            prometheus.Histogram
	views              *prometheus.CounterVec
	renderDuration     prometheus.Histogram
	patches            *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

// New registers the collectors with the configured registry. Registering
// twice against the same registry panics, as with promauto.
func New(opts ...Option) *Metrics {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		attributesResolved: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "attributes_resolved_total",
			Help:        "Total number of attributes resolved for rendering",
			ConstLabels: config.ConstLabels,
		}, []string{"kind", "present"}),

		fnDepth: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "attribute_fn_depth",
			Help:        "Number of Fn calls needed to resolve an attribute",
			ConstLabels: config.ConstLabels,
			Buckets:     config.DepthBuckets,
		}),

		views: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "views_total",
			Help:        "Total number of views rendered",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.DurationBuckets,
		}),

		patches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "patches_total",
			Help:        "Total number of live attribute patches",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),

		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: config.ConstLabels,
		}, []string{"route", "status"}),

		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.DurationBuckets,
		}, []string{"route"}),
	}
}

// ObserveAttribute records one attribute resolution. kind is the variant of
// the unresolved attribute, depth the number of Fn calls made.
func (m *Metrics) ObserveAttribute(kind string, depth int, present bool) {
	if m == nil {
		return
	}
	p := "false"
	if present {
		p = "true"
	}
	m.attributesResolved.WithLabelValues(kind, p).Inc()
	m.fnDepth.Observe(float64(depth))
}

// ObserveView records one rendered view of the given kind.
func (m *Metrics) ObserveView(kind string) {
	if m == nil {
		return
	}
	m.views.WithLabelValues(kind).Inc()
}

// ObserveRender records the duration of a render started at start.
func (m *Metrics) ObserveRender(start time.Time) {
	if m == nil {
		return
	}
	m.renderDuration.Observe(time.Since(start).Seconds())
}

// ObservePatch records a live patch; op is "set" or "remove".
func (m *Metrics) ObservePatch(op string) {
	if m == nil {
		return
	}
	m.patches.WithLabelValues(op).Inc()
}
