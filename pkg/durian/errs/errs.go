package errs

// Handler consumes failures. It is the shape shared by Handling policies and
// the LogHandler/DialogHandler plugin capabilities.
type Handler func(error)

// Policy is the common surface of Handling and Rethrowing: feed it a failure
// and it reacts. Handling returns normally afterwards; Rethrowing never does.
type Policy interface {
	Handle(err error)
}

// Compile-time checks that both policies satisfy Policy.
var (
	_ Policy = (*Handling)(nil)
	_ Policy = (*Rethrowing)(nil)
)

// Handling reacts to failures with a handler and lets execution continue,
// substituting a caller-supplied fallback wherever a value is needed.
type Handling struct {
	handler Handler
}

// NewHandling creates a Handling policy. A nil handler ignores failures;
// Suppress is the shared ready-made instance of that.
func NewHandling(handler Handler) *Handling {
	return &Handling{handler: handler}
}

// Handle feeds one failure to the handler. A nil error is ignored, so
// Handle(op()) is safe on success paths.
func (p *Handling) Handle(err error) {
	if err == nil || p.handler == nil {
		return
	}
	p.handler(err)
}

// Run executes op, feeding a failure from either channel to the handler.
func (p *Handling) Run(op func() error) {
	p.Handle(captureErr(op))
}

// Wrap converts op into a function that cannot fail observably.
func (p *Handling) Wrap(op func() error) func() {
	return func() {
		p.Run(op)
	}
}

// Rethrowing transforms failures and raises them. It never substitutes a
// value, which is why nothing on this type accepts a fallback.
type Rethrowing struct {
	transform func(error) error
}

// NewRethrowing creates a Rethrowing policy. A nil transform raises failures
// unchanged.
func NewRethrowing(transform func(error) error) *Rethrowing {
	return &Rethrowing{transform: transform}
}

// Handle raises the transformed failure; it never returns normally for a
// non-nil error. A nil error is ignored.
func (p *Rethrowing) Handle(err error) {
	if err == nil {
		return
	}
	if p.transform != nil {
		err = p.transform(err)
	}
	panic(err)
}

// Run executes op, raising the transformed failure if it fails.
func (p *Rethrowing) Run(op func() error) {
	p.Handle(captureErr(op))
}

// Wrap converts op into a function that succeeds silently or raises.
func (p *Rethrowing) Wrap(op func() error) func() {
	return func() {
		p.Run(op)
	}
}

// GetWithDefault runs op and returns its value on success. On failure the
// handler observes the failure exactly once and fallback is returned.
func GetWithDefault[T any](p *Handling, op func() (T, error), fallback T) T {
	res := Capture(op)
	p.Handle(res.Err())
	return res.OrElse(fallback)
}

// WrapWithDefault converts op into a total function: every call yields the
// operation's value or, after the handler has seen the failure, fallback.
func WrapWithDefault[T any](p *Handling, op func() (T, error), fallback T) func() T {
	return func() T {
		return GetWithDefault(p, op, fallback)
	}
}

// FuncWithDefault converts a fallible unary function into a total one under
// a Handling policy.
func FuncWithDefault[A, R any](p *Handling, fn func(A) (R, error), fallback R) func(A) R {
	return func(a A) R {
		return GetWithDefault(p, func() (R, error) { return fn(a) }, fallback)
	}
}

// Get runs op and returns its value. On failure it raises the policy's
// transformed failure; there is no substitute value.
func Get[T any](p *Rethrowing, op func() (T, error)) T {
	res := Capture(op)
	p.Handle(res.Err())
	return res.value
}

// WrapGet converts op into a value-returning function that raises on
// failure.
func WrapGet[T any](p *Rethrowing, op func() (T, error)) func() T {
	return func() T {
		return Get(p, op)
	}
}

// Func converts a fallible unary function into one that raises on failure.
func Func[A, R any](p *Rethrowing, fn func(A) (R, error)) func(A) R {
	return func(a A) R {
		return Get(p, func() (R, error) { return fn(a) })
	}
}

// Consumer wraps a fallible consumer under any policy: Handling swallows the
// failure after the handler sees it, Rethrowing raises it.
func Consumer[A any](p Policy, fn func(A) error) func(A) {
	return func(a A) {
		p.Handle(captureErr(func() error { return fn(a) }))
	}
}
