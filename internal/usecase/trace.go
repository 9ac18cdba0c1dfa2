package usecase

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("vpl-ladder/internal/usecase")
var usecaseNoopSpan = trace.SpanFromContext(context.Background())

// startUsecaseSpan only starts a child span; without a sampled parent the
// work is not traced at all.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" {
		return ctx, usecaseNoopSpan
	}
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func competitionAttr(competitionID string) attribute.KeyValue {
	return attribute.String("competition.id", strings.TrimSpace(competitionID))
}

// recordSpanError adds err to span and returns it. Upstream and unexpected
// errors also mark the span as failed; caller mistakes (invalid input, not
// found) leave the status unset.
func recordSpanError(span trace.Span, err error) error {
	if err == nil {
		return nil
	}
	span.RecordError(err)
	if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrNotFound) {
		return err
	}
	span.SetStatus(codes.Error, err.Error())
	return err
}
