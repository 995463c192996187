package observe

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/glazeui/glaze/pkg/toast"
)

// Default tracer name for Glaze.
const defaultTracerName = "glaze"

// TracingConfig configures the OpenTelemetry observer.
type TracingConfig struct {
	// TracerName is the name of the tracer (default: "glaze").
	TracerName string

	// IncludeMessage includes the toast message in span attributes.
	// Messages may contain user data - disabled by default.
	IncludeMessage bool
}

// TracingOption configures the OpenTelemetry observer.
type TracingOption func(*TracingConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracingOption {
	return func(c *TracingConfig) {
		c.TracerName = name
	}
}

// WithIncludeMessage enables recording the toast message on spans.
func WithIncludeMessage(include bool) TracingOption {
	return func(c *TracingConfig) {
		c.IncludeMessage = include
	}
}

// Tracing is a toast.Observer that records admission outcomes as spans.
//
// The tracer is resolved from the global OpenTelemetry tracer provider;
// configure that in main() before constructing the controller. Each
// admission decision and each retraction completion becomes a short span
// with the outcome as an attribute.
type Tracing struct {
	config TracingConfig
	tracer trace.Tracer
}

// NewTracing creates the OpenTelemetry observer.
func NewTracing(opts ...TracingOption) *Tracing {
	config := TracingConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	return &Tracing{
		config: config,
		tracer: otel.Tracer(config.TracerName),
	}
}

func (t *Tracing) record(name, outcome string, req toast.Request, extra ...attribute.KeyValue) {
	attrs := []attribute.KeyValue{
		attribute.String("glaze.outcome", outcome),
		attribute.String("glaze.kind", string(req.Kind)),
	}
	if t.config.IncludeMessage {
		attrs = append(attrs, attribute.String("glaze.message", req.Message))
	}
	attrs = append(attrs, extra...)

	_, span := t.tracer.Start(
		context.Background(),
		name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
	span.End()
}

// ToastAdmitted implements toast.Observer.
func (t *Tracing) ToastAdmitted(req toast.Request, queued int) {
	t.record("glaze.toast.request", "admitted", req,
		attribute.Int("glaze.queue_depth", queued))
}

// ToastQueued implements toast.Observer.
func (t *Tracing) ToastQueued(req toast.Request, queued int) {
	t.record("glaze.toast.request", "queued", req,
		attribute.Int("glaze.queue_depth", queued))
}

// ToastDropped implements toast.Observer.
func (t *Tracing) ToastDropped(req toast.Request, reason toast.DropReason) {
	t.record("glaze.toast.request", "dropped", req,
		attribute.String("glaze.drop_reason", string(reason)))
}

// ToastDismissed implements toast.Observer.
func (t *Tracing) ToastDismissed() {
	_, span := t.tracer.Start(
		context.Background(),
		"glaze.toast.dismissed",
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	span.End()
}
