package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("vpl-ladder/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// startSpan opens handler spans only, and only under the request span from
// RequestTracing. Helpers and filtered routes get a no-op span.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, noopSpan
	}
	if !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}

// annotateError tags the active span with the mapped API error. Only 5xx
// responses mark the span as failed.
func annotateError(span trace.Span, err error, mapped mappedError) {
	span.SetAttributes(
		attribute.Int("http.response.status_code", mapped.HTTPStatus),
		attribute.String("error.reason", mapped.Reason),
	)
	if mapped.HTTPStatus >= 500 {
		span.RecordError(err)
		span.SetStatus(codes.Error, mapped.Status)
	}
}
