package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span attribute keys for registry calls.
const (
	AttrOperation   = "registry.operation"
	AttrMonkeyID    = "registry.monkey_id"
	AttrRequestID   = "registry.request_id"
	AttrResultCount = "registry.result_count"
	AttrQuery       = "registry.query"
	AttrHTTPMethod  = "http.request.method"
	AttrHTTPStatus  = "http.response.status_code"
	AttrURL         = "url.full"
	AttrCacheHit    = "cache.hit"
)

// SpanPrefixRegistry prefixes every registry client span name.
const SpanPrefixRegistry = "registry."

// StartClientSpan starts a client span for a registry operation. A nil tracer
// returns ctx unchanged and a no-op span.
func StartClientSpan(ctx context.Context, tracer trace.Tracer, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if tracer == nil {
		return ctx, trace.SpanFromContext(context.Background())
	}
	attrs = append(attrs, attribute.String(AttrOperation, op))
	return tracer.Start(ctx, SpanPrefixRegistry+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
}

// EndSpan records err on span, sets the status and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
