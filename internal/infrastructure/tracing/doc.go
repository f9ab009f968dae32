/*
Package tracing provides lightweight request tracing.

Spans follow OpenTelemetry concepts with a minimal implementation: each
HTTP request gets a span with a ULID trace ID, propagated through the
X-Trace-ID and X-Span-ID headers and logged on completion through zap.
Span collection is buffered; when the buffer is full spans are dropped
rather than blocking the request path.
*/
package tracing
