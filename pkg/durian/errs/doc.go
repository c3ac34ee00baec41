// Package errs turns fallible operations into total ones under an explicit
// error-handling policy.
//
// Go code fails through two channels: a returned error and a panic. Much of
// the code we hand to other libraries is not allowed to use either, such as
// callbacks, event handlers, and adapters with failure-free signatures. This
// package wraps a fallible operation so that both channels are intercepted
// and fed to a policy, and the wrapped form can be handed anywhere.
//
// # The failure boundary
//
// Capture runs a fallible operation and produces a Result: either the success
// value or a failure descriptor. A recovered panic becomes a *PanicError
// carrying the panic value and stack; a *PanicError already in flight passes
// through nested wrappers untouched. Everything else in the package is an
// adapter from Result back to plain code.
//
// # Handling and Rethrowing
//
// A Handling policy pairs a failure handler with substitution: the handler
// observes each failure exactly once, then execution continues with the
// caller's fallback value.
//
//	readCache := errs.WrapWithDefault(errs.Log(), loadCache, emptyCache)
//	cache := readCache() // never fails; misses are logged
//
// A Rethrowing policy transforms each failure and raises it; it never
// substitutes and deliberately has no fallback parameter anywhere.
//
//	parse := errs.Func(errs.Rethrow(), strconv.Atoi)
//	n := parse("42") // panics with the transformed failure on bad input
//
// # Built-in policies
//
// Suppress discards failures. Rethrow raises them: a *PanicError is re-raised
// unchanged and a returned error is wrapped in a new *PanicError whose cause
// is the original. Log and Dialog report failures; both are constructed
// lazily on first use and memoized.
//
// # Plugins
//
// Log and Dialog resolve their handlers through the plugin registry
// (durian.Default) against the LogHandler and DialogHandler capabilities, so
// hosts can redirect library-internal failure reporting without touching
// library code:
//
//	durian.MustRegister[errs.LogHandler](durian.Default, func(err error) {
//	    myLogger.Error("library failure", "error", err)
//	})
//
// Unregistered, Log falls back to structured logging through slog and Dialog
// prints a prominent block to stderr.
package errs
