package telemetry

import (
	"context"

	"go.trai.ch/samogon/internal/core/ports"
)

// Discard is a tracer whose spans record nothing.
var Discard ports.Tracer = discardTracer{}

type discardTracer struct{}

func (discardTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, discardSpan{}
}

func (discardTracer) EmitPlan(context.Context, []string) {}

type discardSpan struct{}

func (discardSpan) End()                     {}
func (discardSpan) RecordError(error)        {}
func (discardSpan) SetAttribute(string, any) {}
