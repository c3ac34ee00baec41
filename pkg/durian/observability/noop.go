package observability

import "context"

// NoopFailureRecorder is a FailureRecorder that does nothing.
// Use when metrics are disabled to avoid overhead.
type NoopFailureRecorder struct{}

// Compile-time interface check.
var _ FailureRecorder = NoopFailureRecorder{}

// RecordFailure does nothing.
func (NoopFailureRecorder) RecordFailure(_ context.Context, _ string, _ error) {}
