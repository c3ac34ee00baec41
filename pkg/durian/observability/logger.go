// Package observability provides telemetry adapters for durian's
// error-handling policies: structured failure logging, failure metrics,
// and trace recording.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Failure counting via OpenTelemetry metrics
//   - Failure recording on trace spans via OpenTelemetry
//
// Every adapter produces an errs.Handler, so any of them can back a
// Handling or Rethrowing policy. All features are opt-in and have no-op
// implementations when disabled.
package observability

import (
	"errors"
	"log/slog"

	"github.com/Zzx121/durian/pkg/durian/errs"
)

// LogHandler returns an errs.Handler that logs each failure to logger at
// error level. Panic-origin failures carry their captured stack as an
// extra attribute. A nil logger yields a handler that discards failures.
//
// Example:
//
//	policy := errs.NewHandling(observability.LogHandler(logger))
//	policy.Run(riskyOperation)
func LogHandler(logger *slog.Logger) errs.Handler {
	if logger == nil {
		return func(error) {}
	}
	return func(err error) {
		if err == nil {
			return
		}
		var pe *errs.PanicError
		if errors.As(err, &pe) && pe.Stack != "" {
			logger.Error("unhandled failure",
				slog.String("error", err.Error()),
				slog.String("stack", pe.Stack),
			)
			return
		}
		logger.Error("unhandled failure",
			slog.String("error", err.Error()),
		)
	}
}
