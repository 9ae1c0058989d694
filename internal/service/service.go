// Package service holds the use cases behind the HTTP API. Each service wraps
// one concern of the record store with tracing, metrics and logging.
package service

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/dmehra2102/prod-golang-projects/lifelink/internal/service")

// start opens a span for op and fails fast if the request is already gone.
func start(ctx context.Context, op string) (context.Context, trace.Span, error) {
	ctx, span := tracer.Start(ctx, op)
	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return ctx, span, fmt.Errorf("%s: %w", op, err)
	}
	return ctx, span, nil
}
