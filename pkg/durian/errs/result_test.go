package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureSuccess(t *testing.T) {
	res := Capture(func() (int, error) { return 42, nil })

	assert.True(t, res.Ok())
	assert.NoError(t, res.Err())

	v, err := res.Get()
	assert.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestCaptureReturnedError(t *testing.T) {
	boom := errors.New("boom")
	res := Capture(func() (int, error) { return 0, boom })

	assert.False(t, res.Ok())
	assert.Same(t, boom, res.Err())

	// A returned error stays in its own channel; it is not a panic.
	var pe *PanicError
	assert.False(t, errors.As(res.Err(), &pe))
}

func TestCapturePanic(t *testing.T) {
	res := Capture(func() (int, error) { panic("kaboom") })

	require.False(t, res.Ok())

	var pe *PanicError
	require.ErrorAs(t, res.Err(), &pe)
	assert.Equal(t, "kaboom", pe.Value)
	assert.Contains(t, pe.Stack, "goroutine")
	assert.Equal(t, "panic: kaboom", pe.Error())
}

func TestCapturePanicWithError(t *testing.T) {
	boom := errors.New("boom")
	res := Capture(func() (int, error) { panic(boom) })

	var pe *PanicError
	require.ErrorAs(t, res.Err(), &pe)
	assert.Same(t, boom, pe.Value)
	assert.ErrorIs(t, res.Err(), boom)
}

func TestCapturePassesPanicErrorThrough(t *testing.T) {
	pe := &PanicError{Value: "original", Stack: "trace"}
	res := Capture(func() (int, error) { panic(pe) })

	// Already-captured failures cross nested wrappers as the same instance.
	assert.Same(t, pe, res.Err())
}

func TestCaptureErr(t *testing.T) {
	boom := errors.New("boom")

	assert.NoError(t, captureErr(func() error { return nil }))
	assert.Same(t, boom, captureErr(func() error { return boom }))

	err := captureErr(func() error { panic("kaboom") })
	var pe *PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "kaboom", pe.Value)
}

func TestOrElse(t *testing.T) {
	assert.Equal(t, 42, Ok(42).OrElse(-1))
	assert.Equal(t, -1, Fail[int](errors.New("boom")).OrElse(-1))
}

func TestOkFailConstructors(t *testing.T) {
	ok := Ok("value")
	assert.True(t, ok.Ok())

	boom := errors.New("boom")
	fail := Fail[string](boom)
	assert.False(t, fail.Ok())
	assert.Same(t, boom, fail.Err())

	v, err := fail.Get()
	assert.Equal(t, "", v)
	assert.Same(t, boom, err)
}

func TestPanicErrorUnwrap(t *testing.T) {
	boom := errors.New("boom")
	assert.Same(t, boom, (&PanicError{Value: boom}).Unwrap())

	// Non-error panic values have no cause to expose.
	assert.Nil(t, (&PanicError{Value: 42}).Unwrap())
}

func TestAsUnchecked(t *testing.T) {
	pe := &PanicError{Value: "original"}
	assert.Same(t, pe, asUnchecked(pe))

	boom := errors.New("boom")
	promoted := asUnchecked(boom)
	var wrapped *PanicError
	require.ErrorAs(t, promoted, &wrapped)
	assert.Same(t, boom, wrapped.Value)
	assert.Empty(t, wrapped.Stack)
}
