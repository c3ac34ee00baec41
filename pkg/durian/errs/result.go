package errs

import (
	"fmt"
	"runtime/debug"
)

// PanicError carries a recovered panic as an error. It is the package's
// unchecked-failure form: Capture produces one for every recovered panic,
// and Rethrow raises returned errors wrapped in one. An existing *PanicError
// is never wrapped again; it crosses nested wrappers as the same instance.
type PanicError struct {
	// Value is the value passed to panic(), or the returned error that was
	// promoted to a raised failure.
	Value any
	// Stack is the stack trace captured at recovery, empty for promoted
	// errors.
	Stack string
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value when it is an error, for errors.Is/As
// support.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Result is the outcome of a fallible operation: a success value or a
// failure descriptor, never both. The policy types are adapters from Result
// back to plain code; Result itself is the boundary form for callers that
// want to carry an outcome around before deciding.
type Result[T any] struct {
	value T
	err   error
}

// Ok creates a successful Result.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail creates a failed Result.
func Fail[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Ok reports whether the operation succeeded.
func (r Result[T]) Ok() bool {
	return r.err == nil
}

// Err returns the failure, or nil on success.
func (r Result[T]) Err() error {
	return r.err
}

// Get returns the value and failure in Go's native shape.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// OrElse returns the success value, or fallback on failure.
func (r Result[T]) OrElse(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}

// Capture runs op and converts both failure channels into a Result: a
// returned error is stored as-is, a panic is recovered into a *PanicError.
func Capture[T any](op func() (T, error)) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Result[T]{err: toPanicError(r)}
		}
	}()
	v, err := op()
	if err != nil {
		return Result[T]{err: err}
	}
	return Result[T]{value: v}
}

// captureErr is Capture for operations without a value.
func captureErr(op func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = toPanicError(r)
		}
	}()
	return op()
}

func toPanicError(v any) *PanicError {
	if pe, ok := v.(*PanicError); ok {
		return pe
	}
	return &PanicError{
		Value: v,
		Stack: string(debug.Stack()),
	}
}

// asUnchecked is Rethrow's transform: an unchecked failure passes through
// unchanged, a returned error is promoted to a new *PanicError whose cause
// is the original.
func asUnchecked(err error) error {
	if pe, ok := err.(*PanicError); ok {
		return pe
	}
	return &PanicError{Value: err}
}
