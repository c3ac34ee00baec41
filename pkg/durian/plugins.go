package durian

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"
)

// EnvPrefix is the prefix of the environment variables consulted for factory
// overrides. The full variable name is the prefix followed by the capability's
// fully-qualified type name, uppercased, with every byte outside [A-Za-z0-9]
// replaced by an underscore. EnvVar computes it.
const EnvPrefix = "DURIAN_PLUGINS_"

// Factory constructs a plugin implementation. Factories are registered under
// a name during startup; environment variables and override configuration
// select them by that name.
type Factory func() (any, error)

// Registry maps capability types to their plugin implementations.
//
// A capability is bound at most once for the life of a Registry: either
// explicitly through Register, or implicitly by the first Resolve, which
// memoizes whichever source won (explicit binding, configured factory, or
// the caller's default). Once bound, a capability resolves to the same
// implementation forever; Reset exists only for test isolation.
//
// All methods are safe for concurrent use. Resolve's fast path is a single
// lock-free map read.
type Registry struct {
	// bindings maps reflect.Type -> implementation.
	bindings sync.Map

	mu        sync.RWMutex
	factories map[string]Factory
	overrides map[string]string

	// lookupEnv reads the override environment. Swapped in tests.
	lookupEnv func(string) (string, bool)
}

// Option configures a Registry.
type Option func(*Registry)

// WithEnvLookup replaces the process-environment lookup used for the
// override tier. Tests use it to inject variables without mutating the
// process environment.
func WithEnvLookup(lookup func(string) (string, bool)) Option {
	return func(r *Registry) {
		r.lookupEnv = lookup
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		factories: make(map[string]Factory),
		overrides: make(map[string]string),
		lookupEnv: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register binds impl as the implementation of the capability type.
// Registration is atomic put-if-absent: exactly one registrant wins and every
// other caller gets an AlreadyBoundError, including callers that arrive after
// the capability was bound by a Resolve.
func (r *Registry) Register(capability reflect.Type, impl any) error {
	if capability == nil {
		return ErrNilCapability
	}
	if impl == nil {
		return ErrNilImplementation
	}
	if it := reflect.TypeOf(impl); !it.AssignableTo(capability) {
		return fmt.Errorf("%w: %s is not a %s", ErrIncompatible, it, capability)
	}
	if existing, loaded := r.bindings.LoadOrStore(capability, impl); loaded {
		return &AlreadyBoundError{Capability: capability.String(), Existing: existing}
	}
	return nil
}

// Resolve returns the implementation bound to the capability type,
// establishing the binding on first use. Resolution order:
//
//  1. an explicitly registered implementation
//  2. a factory named by the capability's environment variable, or failing
//     that by the override table
//  3. the caller-supplied default
//
// The winner is memoized; every later Resolve returns it regardless of
// environment changes or differing defaults. Configuration problems in the
// factory tier (unknown factory name, construction failure, incompatible
// product) are returned as *ConfigError and never fall through to the
// default; nothing is memoized, so the next Resolve fails the same way.
//
// Concurrent first resolutions may each run the factory-or-default logic,
// but at most one result is retained and all callers observe that winner.
// Duplicates constructed by the losers are discarded.
func (r *Registry) Resolve(capability reflect.Type, def any) (any, error) {
	if capability == nil {
		return nil, ErrNilCapability
	}
	if def == nil {
		return nil, ErrNilDefault
	}
	if v, ok := r.bindings.Load(capability); ok {
		return v, nil
	}

	candidate, err := r.configured(capability)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		if dt := reflect.TypeOf(def); !dt.AssignableTo(capability) {
			return nil, fmt.Errorf("%w: default %s is not a %s", ErrIncompatible, dt, capability)
		}
		candidate = def
	}

	actual, _ := r.bindings.LoadOrStore(capability, candidate)
	return actual, nil
}

// configured returns the implementation selected by the environment or the
// override table, or nil when nothing names this capability.
func (r *Registry) configured(capability reflect.Type) (any, error) {
	if capability.Name() == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnnamedCapability, capability)
	}
	qualified := qualifiedName(capability)

	factoryName, ok := r.lookupEnv(envVarName(qualified))
	if !ok {
		r.mu.RLock()
		factoryName, ok = r.overrides[qualified]
		r.mu.RUnlock()
	}
	if !ok || factoryName == "" {
		return nil, nil
	}

	r.mu.RLock()
	factory, have := r.factories[factoryName]
	r.mu.RUnlock()
	if !have {
		return nil, &ConfigError{Capability: qualified, Factory: factoryName, Err: ErrFactoryNotFound}
	}

	v, err := factory()
	if err != nil {
		return nil, &ConfigError{Capability: qualified, Factory: factoryName, Err: err}
	}
	if v == nil {
		return nil, &ConfigError{Capability: qualified, Factory: factoryName, Err: ErrNilImplementation}
	}
	if vt := reflect.TypeOf(v); !vt.AssignableTo(capability) {
		return nil, &ConfigError{
			Capability: qualified,
			Factory:    factoryName,
			Err:        fmt.Errorf("%w: %s is not a %s", ErrIncompatible, vt, capability),
		}
	}
	return v, nil
}

// RegisterFactory adds a named constructor for use by the override tier.
// Factory names are bound once; registering a duplicate name is an error.
func (r *Registry) RegisterFactory(name string, fn Factory) error {
	if name == "" {
		return ErrEmptyFactoryName
	}
	if fn == nil {
		return ErrNilFactory
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("%w: %q", ErrFactoryExists, name)
	}
	r.factories[name] = fn
	return nil
}

// SetOverride selects a factory for a capability by fully-qualified name.
// It is the programmatic equivalent of the environment tier; overrides are
// consulted only at a capability's first resolution, so setting one after
// the capability is bound has no effect. An environment variable for the
// same capability wins over the table.
func (r *Registry) SetOverride(capability, factory string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overrides[capability] = factory
}

// Bound reports whether the capability type has a binding.
func (r *Registry) Bound(capability reflect.Type) bool {
	_, ok := r.bindings.Load(capability)
	return ok
}

// Reset discards every binding while keeping factories and overrides.
// It exists for test isolation; production code never unbinds a capability.
func (r *Registry) Reset() {
	r.bindings.Clear()
}

// qualifiedName returns the import-path-qualified name of t.
func qualifiedName(t reflect.Type) string {
	if t.PkgPath() == "" {
		return t.Name()
	}
	return t.PkgPath() + "." + t.Name()
}

// envVarName mangles a qualified capability name into its override variable.
func envVarName(qualified string) string {
	var b strings.Builder
	b.Grow(len(EnvPrefix) + len(qualified))
	b.WriteString(EnvPrefix)
	upper := strings.ToUpper(qualified)
	for i := 0; i < len(upper); i++ {
		c := upper[i]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			b.WriteByte(c)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Key returns the registry key for a capability type.
func Key[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Name returns the fully-qualified name of a capability type, as used by
// override configuration files.
func Name[T any]() string {
	return qualifiedName(Key[T]())
}

// EnvVar returns the environment variable that selects a factory override
// for a capability type.
func EnvVar[T any]() string {
	return envVarName(qualifiedName(Key[T]()))
}

// Register binds impl as the implementation of capability T in r.
func Register[T any](r *Registry, impl T) error {
	return r.Register(Key[T](), impl)
}

// MustRegister binds impl, panicking on error. For startup wiring where a
// duplicate binding is a programming error.
func MustRegister[T any](r *Registry, impl T) {
	if err := Register(r, impl); err != nil {
		panic(fmt.Sprintf("durian: register %s: %v", Key[T](), err))
	}
}

// Resolve returns the binding for capability T, establishing it on first use.
// See Registry.Resolve for the resolution order and memoization contract.
func Resolve[T any](r *Registry, def T) (T, error) {
	v, err := r.Resolve(Key[T](), def)
	if err != nil {
		var zero T
		return zero, err
	}
	if t, ok := v.(T); ok {
		return t, nil
	}
	// Bound through the untyped API with an assignable but non-identical
	// type, e.g. an unnamed func stored under a named func capability.
	return reflect.ValueOf(v).Convert(Key[T]()).Interface().(T), nil
}

// MustResolve returns the binding for capability T, panicking on error.
// A malformed factory override is a deployment fault, not a recoverable
// condition, which is why the lazy accessors in package errs use this path.
func MustResolve[T any](r *Registry, def T) T {
	v, err := Resolve(r, def)
	if err != nil {
		panic(fmt.Sprintf("durian: resolve %s: %v", Key[T](), err))
	}
	return v
}

// Bound reports whether capability T has a binding in r.
func Bound[T any](r *Registry) bool {
	return r.Bound(Key[T]())
}

// Provide adapts a typed constructor into a Factory.
func Provide[T any](ctor func() (T, error)) Factory {
	return func() (any, error) {
		v, err := ctor()
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// Default is the process-wide registry. It is constructed at package
// initialization and owned by the host process, which wires factories,
// overrides, and explicit registrations during startup, before anything
// resolves against it. The lazy error-handling policies in package errs
// resolve their plugins through Default.
var Default = NewRegistry()
