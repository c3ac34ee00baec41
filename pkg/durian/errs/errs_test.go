package errs

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catchPanic runs f and returns the recovered panic value, failing the test
// if f returns normally.
func catchPanic(t *testing.T, f func()) (v any) {
	t.Helper()
	defer func() {
		v = recover()
		if v == nil {
			t.Fatal("expected panic")
		}
	}()
	f()
	return nil
}

func TestHandlingRun(t *testing.T) {
	boom := errors.New("boom")
	var got []error
	p := NewHandling(func(err error) { got = append(got, err) })

	p.Run(func() error { return boom })

	require.Len(t, got, 1)
	assert.Same(t, boom, got[0])
}

func TestHandlingRunSuccess(t *testing.T) {
	calls := 0
	p := NewHandling(func(error) { calls++ })

	p.Run(func() error { return nil })

	assert.Equal(t, 0, calls)
}

func TestHandlingRunRecoversPanic(t *testing.T) {
	var got []error
	p := NewHandling(func(err error) { got = append(got, err) })

	assert.NotPanics(t, func() {
		p.Run(func() error { panic("kaboom") })
	})

	require.Len(t, got, 1)
	var pe *PanicError
	require.ErrorAs(t, got[0], &pe)
	assert.Equal(t, "kaboom", pe.Value)
}

func TestHandlingHandleNil(t *testing.T) {
	calls := 0
	p := NewHandling(func(error) { calls++ })

	p.Handle(nil)

	assert.Equal(t, 0, calls)
}

func TestHandlingNilHandler(t *testing.T) {
	p := NewHandling(nil)

	assert.NotPanics(t, func() {
		p.Run(func() error { return errors.New("ignored") })
	})
}

func TestHandlingWrap(t *testing.T) {
	calls := 0
	p := NewHandling(func(error) { calls++ })

	wrapped := p.Wrap(func() error { return errors.New("boom") })
	wrapped()
	wrapped()

	assert.Equal(t, 2, calls)
}

func TestGetWithDefault(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	p := NewHandling(func(err error) {
		calls++
		assert.Same(t, boom, err)
	})

	v := GetWithDefault(p, func() (int, error) { return 0, boom }, -1)
	assert.Equal(t, -1, v)
	assert.Equal(t, 1, calls)
}

func TestGetWithDefaultSuccess(t *testing.T) {
	calls := 0
	p := NewHandling(func(error) { calls++ })

	v := GetWithDefault(p, func() (int, error) { return 42, nil }, -1)
	assert.Equal(t, 42, v)
	assert.Equal(t, 0, calls)
}

func TestGetWithDefaultPanic(t *testing.T) {
	var got []error
	p := NewHandling(func(err error) { got = append(got, err) })

	v := GetWithDefault(p, func() (string, error) { panic("kaboom") }, "fallback")

	assert.Equal(t, "fallback", v)
	require.Len(t, got, 1)
	var pe *PanicError
	assert.ErrorAs(t, got[0], &pe)
}

func TestWrapWithDefault(t *testing.T) {
	calls := 0
	p := NewHandling(func(error) { calls++ })

	attempts := 0
	get := WrapWithDefault(p, func() (int, error) {
		attempts++
		if attempts < 2 {
			return 0, errors.New("not yet")
		}
		return attempts, nil
	}, -1)

	assert.Equal(t, -1, get())
	assert.Equal(t, 2, get())
	assert.Equal(t, 1, calls)
}

func TestFuncWithDefault(t *testing.T) {
	var got []error
	p := NewHandling(func(err error) { got = append(got, err) })

	parse := FuncWithDefault(p, strconv.Atoi, -1)

	assert.Equal(t, 12, parse("12"))
	assert.Equal(t, -1, parse("twelve"))

	require.Len(t, got, 1)
	var numErr *strconv.NumError
	assert.ErrorAs(t, got[0], &numErr)
}

func TestConsumerWithHandling(t *testing.T) {
	var got []error
	p := NewHandling(func(err error) { got = append(got, err) })

	accept := Consumer(p, func(s string) error {
		if s == "" {
			return errors.New("empty")
		}
		return nil
	})

	accept("fine")
	accept("")

	assert.Len(t, got, 1)
}

func TestConsumerWithRethrowing(t *testing.T) {
	boom := errors.New("boom")
	accept := Consumer(NewRethrowing(nil), func(string) error { return boom })

	v := catchPanic(t, func() { accept("anything") })
	assert.Same(t, boom, v)
}

func TestRethrowingRunSuccess(t *testing.T) {
	p := NewRethrowing(nil)

	assert.NotPanics(t, func() {
		p.Run(func() error { return nil })
	})
}

func TestRethrowingHandleNil(t *testing.T) {
	assert.NotPanics(t, func() {
		NewRethrowing(nil).Handle(nil)
	})
}

func TestRethrowingTransform(t *testing.T) {
	boom := errors.New("boom")
	p := NewRethrowing(func(err error) error {
		return fmt.Errorf("while syncing: %w", err)
	})

	v := catchPanic(t, func() {
		p.Run(func() error { return boom })
	})

	err, ok := v.(error)
	require.True(t, ok)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "while syncing: boom", err.Error())
}

func TestRethrowingNilTransformRaisesOriginal(t *testing.T) {
	boom := errors.New("boom")
	p := NewRethrowing(nil)

	v := catchPanic(t, func() {
		p.Run(func() error { return boom })
	})

	assert.Same(t, boom, v)
}

func TestRethrowingGet(t *testing.T) {
	p := NewRethrowing(nil)

	v := Get(p, func() (int, error) { return 42, nil })
	assert.Equal(t, 42, v)

	boom := errors.New("boom")
	recovered := catchPanic(t, func() {
		Get(p, func() (int, error) { return 0, boom })
	})
	assert.Same(t, boom, recovered)
}

func TestRethrowingWrapGet(t *testing.T) {
	p := NewRethrowing(nil)

	get := WrapGet(p, func() (string, error) { return "ok", nil })
	assert.Equal(t, "ok", get())
}

func TestRethrowingFunc(t *testing.T) {
	parse := Func(NewRethrowing(nil), strconv.Atoi)

	assert.Equal(t, 7, parse("7"))
	assert.Panics(t, func() { parse("seven") })
}

func TestNestedPoliciesPreserveFailureInstance(t *testing.T) {
	boom := errors.New("boom")
	var got []error
	outer := NewHandling(func(err error) { got = append(got, err) })

	// The inner policy raises; the outer one recovers the same carrier.
	inner := Rethrow().Wrap(func() error { return boom })
	outer.Run(func() error {
		inner()
		return nil
	})

	require.Len(t, got, 1)
	pe, ok := got[0].(*PanicError)
	require.True(t, ok)
	assert.Same(t, boom, pe.Value)
}

func BenchmarkHandlingRunSuccess(b *testing.B) {
	p := NewHandling(func(error) {})
	op := func() error { return nil }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Run(op)
	}
}

func BenchmarkGetWithDefaultSuccess(b *testing.B) {
	p := NewHandling(func(error) {})
	op := func() (int, error) { return 42, nil }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetWithDefault(p, op, -1)
	}
}
