// Package durian provides a process-wide plugin registry for swapping the
// behavior of library extension points.
//
// A capability is a type, usually an interface or a named function type, that
// describes one extension point. A Registry binds each capability to exactly
// one implementation for the life of the process: whoever binds first wins,
// and everyone else observes that winner forever.
//
// # Registering and resolving
//
// Hosts register implementations during startup; libraries resolve with a
// default they are prepared to live with:
//
//	type Greeter interface {
//	    Greet(name string) string
//	}
//
//	// Host startup:
//	if err := durian.Register[Greeter](durian.Default, politeGreeter{}); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Library code, later:
//	g, err := durian.Resolve[Greeter](durian.Default, casualGreeter{})
//
// Resolution is memoized: the first call establishes the binding (explicit
// registration, then configured factory, then the default) and every later
// call returns the same implementation. Registering a capability that is
// already bound fails with AlreadyBoundError.
//
// # Configured overrides
//
// Deployments can override a default without code changes. Factories are
// named constructors registered at startup:
//
//	reg.RegisterFactory("shouty", durian.Provide(func() (Greeter, error) {
//	    return shoutyGreeter{}, nil
//	}))
//
// A factory is selected per capability either by environment variable,
//
//	DURIAN_PLUGINS_EXAMPLE_COM_APP_GREETER=shouty
//
// (EnvVar[Greeter]() prints the exact name), or by an overrides file applied
// with LoadOverrides:
//
//	plugins:
//	  example.com/app.Greeter: shouty
//
// A configured factory that is missing, fails, or produces the wrong type is
// a fatal configuration error: Resolve returns it, nothing falls back to the
// default, and nothing is memoized.
//
// # The Default registry
//
// Default is the one process-wide Registry. It is constructed at package
// initialization, the host owns its startup wiring, and the error-handling
// policies in package errs resolve their plugins through it. Code that wants
// isolation constructs its own Registry and passes it around explicitly.
//
// # Concurrency
//
// All operations are safe for concurrent use. Registration is atomic
// put-if-absent. Resolution's fast path is one lock-free read; concurrent
// first resolutions may construct duplicate candidates, but at most one is
// retained and all callers see it. Reset discards bindings and exists for
// test isolation only.
package durian
