// Package tracing turns drain cycles into OpenTelemetry spans. Without an
// installed TracerProvider the global no-op provider is used and the
// observer costs next to nothing.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "github.com/agbru/coffeemachine/internal/tracing"

	// SpanName is the name of the span covering one drain cycle.
	SpanName = "coffeemachine.cycle"
	// EventOrderCompleted is added to the span after every order.
	EventOrderCompleted = "order.completed"
)

// Observer opens one span per cycle and records an event per order.
type Observer struct {
	tracer trace.Tracer
	parent context.Context
	span   trace.Span
}

// Option configures an Observer.
type Option func(*Observer)

// WithTracer sets the tracer used to open cycle spans.
func WithTracer(t trace.Tracer) Option {
	return func(o *Observer) { o.tracer = t }
}

// WithParent sets the context cycle spans are started from.
func WithParent(ctx context.Context) Option {
	return func(o *Observer) { o.parent = ctx }
}

// New returns an Observer using the global tracer provider unless
// WithTracer is given.
func New(opts ...Option) *Observer {
	o := &Observer{
		tracer: otel.Tracer(instrumentationName),
		parent: context.Background(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Started opens the cycle span with the queue size as an attribute.
func (o *Observer) Started(numOrders int) error {
	_, o.span = o.tracer.Start(o.parent, SpanName,
		trace.WithAttributes(attribute.Int("orders.count", numOrders)))
	return nil
}

// Progress adds an order-completed event to the open span.
func (o *Observer) Progress(percent int) error {
	if o.span == nil {
		return nil
	}
	o.span.AddEvent(EventOrderCompleted,
		trace.WithAttributes(attribute.Int("progress.percent", percent)))
	return nil
}

// Finished marks the open span as successful and ends it.
func (o *Observer) Finished() error {
	if o.span == nil {
		return nil
	}
	o.span.SetStatus(codes.Ok, "")
	o.span.End()
	o.span = nil
	return nil
}

// Aborted marks the open span as failed and ends it. It does nothing when
// the cycle aborted before Started reached this observer.
func (o *Observer) Aborted(err error) {
	if o.span == nil {
		return
	}
	o.span.RecordError(err)
	o.span.SetStatus(codes.Error, err.Error())
	o.span.End()
	o.span = nil
}
