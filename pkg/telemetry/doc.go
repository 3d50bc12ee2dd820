// Package telemetry collects Prometheus metrics and OpenTelemetry spans for
// attribute resolution, view construction and rendering.
//
// Metrics are instance-scoped: create one Metrics per registry and pass it
// to the renderer and live bindings. A nil *Metrics is a valid no-op.
//
// Metrics collected (namespace "vattr" by default):
//   - vattr_attributes_resolved_total: attributes resolved, by kind and presence
//   - vattr_attribute_fn_depth: Fn calls made per resolution
//   - vattr_views_total: views rendered, by kind
//   - vattr_render_duration_seconds: time spent per render call
//   - vattr_patches_total: live attribute patches, by operation
//   - vattr_http_requests_total: HTTP requests, by route and status
//   - vattr_http_request_duration_seconds: HTTP request duration, by route
//
// Spans use the global tracer provider; configure it with
// otel.SetTracerProvider before rendering.
package telemetry
