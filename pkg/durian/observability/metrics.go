package observability

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Zzx121/durian/pkg/durian/errs"
)

// FailureRecorder records failures handled by error-handling policies.
// Use NewFailureRecorder() for OTel metrics or NoopFailureRecorder{} when disabled.
type FailureRecorder interface {
	// RecordFailure records a failure handled by the named policy.
	// A nil err is ignored.
	RecordFailure(ctx context.Context, policy string, err error)
}

// otelRecorder implements FailureRecorder using OpenTelemetry.
type otelRecorder struct {
	failures metric.Int64Counter
}

var (
	defaultRecorder     *otelRecorder
	defaultRecorderOnce sync.Once
	defaultRecorderErr  error
)

// getDefaultRecorder returns the default OTel recorder instance.
// Lazily initializes the instruments on first call.
func getDefaultRecorder() (*otelRecorder, error) {
	defaultRecorderOnce.Do(func() {
		defaultRecorder, defaultRecorderErr = newOtelRecorder()
	})
	return defaultRecorder, defaultRecorderErr
}

// newOtelRecorder creates a new OTel recorder instance.
func newOtelRecorder() (*otelRecorder, error) {
	meter := otel.Meter("durian")

	failures, err := meter.Int64Counter("durian.failures.handled",
		metric.WithDescription("Number of failures handled by error-handling policies"),
	)
	if err != nil {
		return nil, err
	}

	return &otelRecorder{failures: failures}, nil
}

// NewFailureRecorder returns a FailureRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewFailureRecorder() FailureRecorder {
	r, err := getDefaultRecorder()
	if err != nil {
		slog.Warn("failure metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopFailureRecorder{}
	}
	return r
}

// RecordFailure records a handled failure.
func (r *otelRecorder) RecordFailure(ctx context.Context, policy string, err error) {
	if err == nil {
		return
	}
	r.failures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("policy", policy),
		attribute.String("kind", failureKind(err)),
	))
}

// failureKind classifies a failure by the channel it arrived on:
// "panic" for failures carried by an errs.PanicError, "error" otherwise.
func failureKind(err error) string {
	var pe *errs.PanicError
	if errors.As(err, &pe) {
		return "panic"
	}
	return "error"
}

// Handler returns an errs.Handler that records each failure with recorder
// under the given policy name. A nil recorder yields a handler that
// discards failures.
//
// Example:
//
//	rec := observability.NewFailureRecorder()
//	policy := errs.NewHandling(observability.Handler(rec, "suppress"))
func Handler(recorder FailureRecorder, policy string) errs.Handler {
	if recorder == nil {
		recorder = NoopFailureRecorder{}
	}
	return func(err error) {
		recorder.RecordFailure(context.Background(), policy, err)
	}
}
