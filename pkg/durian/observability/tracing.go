package observability

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Zzx121/durian/pkg/durian/errs"
)

// SpanHandler returns an errs.Handler that records each failure on the
// span in ctx: the failure becomes an exception event and the span status
// is set to Error. With no recording span in ctx the handler does nothing.
//
// The span is not ended; its lifecycle stays with the caller.
//
// Example:
//
//	ctx, span := tracer.Start(ctx, "sync")
//	defer span.End()
//	policy := errs.NewHandling(observability.SpanHandler(ctx))
func SpanHandler(ctx context.Context) errs.Handler {
	return func(err error) {
		if err == nil {
			return
		}
		span := trace.SpanFromContext(ctx)
		if span == nil || !span.IsRecording() {
			return
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
