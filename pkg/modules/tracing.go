package modules

import (
	"context"

	"github.com/vango-dev/treepatch/pkg/vdom"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for reconciliation spans.
const defaultTracerName = "treepatch/vdom"

// TracingConfig configures the OpenTelemetry module.
type TracingConfig struct {
	// TracerName is the name of the tracer (default: "treepatch/vdom").
	TracerName string

	// Provider supplies the tracer.
	// Default: the global provider from otel.GetTracerProvider.
	Provider trace.TracerProvider

	// Context returns the parent context for each pass span.
	// Default: context.Background.
	Context func() context.Context
}

// TracingOption configures the OpenTelemetry module.
type TracingOption func(*TracingConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracingOption {
	return func(c *TracingConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) TracingOption {
	return func(c *TracingConfig) {
		c.Provider = tp
	}
}

// WithParentContext sets the function supplying each span's parent context.
func WithParentContext(fn func() context.Context) TracingOption {
	return func(c *TracingConfig) {
		c.Context = fn
	}
}

// Tracing records one span per pass with the number of elements created,
// nodes updated, and removals started. A pass that aborts leaves its span
// open; the next pass ends it with an error status.
func Tracing(opts ...TracingOption) vdom.Module {
	config := TracingConfig{
		TracerName: defaultTracerName,
		Context:    context.Background,
	}
	for _, opt := range opts {
		opt(&config)
	}
	if config.Provider == nil {
		config.Provider = otel.GetTracerProvider()
	}

	t := &passTracer{tracer: config.Provider.Tracer(config.TracerName), parent: config.Context}
	return vdom.Module{
		Name: "tracing",
		Pre:  t.start,
		Post: t.end,
		Create: func(_, _ *vdom.VNode) error {
			t.created++
			return nil
		},
		Update: func(_, _ *vdom.VNode) error {
			t.updated++
			return nil
		},
		Remove: func(_ *vdom.VNode, rm *vdom.Removal) error {
			t.removed++
			return rm.Done()
		},
	}
}

type passTracer struct {
	tracer trace.Tracer
	parent func() context.Context
	span   trace.Span

	created, updated, removed int
}

func (t *passTracer) start() error {
	if t.span != nil {
		t.span.SetStatus(codes.Error, "pass aborted")
		t.span.End()
	}
	_, t.span = t.tracer.Start(t.parent(), "vdom.patch", trace.WithSpanKind(trace.SpanKindInternal))
	t.created, t.updated, t.removed = 0, 0, 0
	return nil
}

func (t *passTracer) end() error {
	if t.span == nil {
		return nil
	}
	t.span.SetAttributes(
		attribute.Int("vdom.created", t.created),
		attribute.Int("vdom.updated", t.updated),
		attribute.Int("vdom.removed", t.removed),
	)
	t.span.SetStatus(codes.Ok, "")
	t.span.End()
	t.span = nil
	return nil
}
