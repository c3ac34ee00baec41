package collectest

import "testing"

// FailHandler returns a failure handler that fails t with any failure it
// receives. Back a Handling policy with it in tests where swallowed
// failures should surface as test failures.
//
// Example:
//
//	policy := errs.NewHandling(collectest.FailHandler(t))
//	policy.Run(operationUnderTest)
func FailHandler(t testing.TB) func(error) {
	return func(err error) {
		if err == nil {
			return
		}
		t.Helper()
		t.Errorf("unexpected failure: %v", err)
	}
}
