package durian

import (
	"errors"
	"fmt"
)

// Sentinel errors for registration and resolution.
var (
	// ErrNilCapability indicates a nil capability type was passed.
	ErrNilCapability = errors.New("capability type cannot be nil")

	// ErrNilImplementation indicates a nil implementation was passed or produced.
	ErrNilImplementation = errors.New("implementation cannot be nil")

	// ErrNilDefault indicates Resolve was called with a nil default.
	ErrNilDefault = errors.New("default implementation cannot be nil")

	// ErrAlreadyBound indicates the capability already has a binding.
	ErrAlreadyBound = errors.New("capability already bound")

	// ErrIncompatible indicates a value does not satisfy its capability type.
	ErrIncompatible = errors.New("implementation does not satisfy capability")

	// ErrUnnamedCapability indicates the capability type has no name, so no
	// override variable can exist for it.
	ErrUnnamedCapability = errors.New("capability type has no name")
)

// Sentinel errors for factory wiring.
var (
	// ErrFactoryNotFound indicates an override names an unregistered factory.
	ErrFactoryNotFound = errors.New("factory not registered")

	// ErrFactoryExists indicates the factory name is already taken.
	ErrFactoryExists = errors.New("factory already registered")

	// ErrEmptyFactoryName indicates a factory was registered without a name.
	ErrEmptyFactoryName = errors.New("factory name cannot be empty")

	// ErrNilFactory indicates a nil factory function was registered.
	ErrNilFactory = errors.New("factory cannot be nil")
)

// AlreadyBoundError reports a registration attempt for a capability that
// already has a binding. It identifies the loser's capability and the
// implementation that won.
type AlreadyBoundError struct {
	// Capability is the capability type name.
	Capability string
	// Existing is the implementation currently bound.
	Existing any
}

// Error implements the error interface.
func (e *AlreadyBoundError) Error() string {
	return fmt.Sprintf("%s already bound to %T", e.Capability, e.Existing)
}

// Unwrap returns ErrAlreadyBound for errors.Is support.
func (e *AlreadyBoundError) Unwrap() error {
	return ErrAlreadyBound
}

// ConfigError reports a fatal plugin-configuration problem discovered during
// resolution: the override names an unknown factory, the factory failed, or
// its product does not satisfy the capability. Configuration errors are never
// downgraded to the caller's default.
type ConfigError struct {
	// Capability is the fully-qualified capability type name.
	Capability string
	// Factory is the configured factory name.
	Factory string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("configured factory %q for %s: %v", e.Factory, e.Capability, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ConfigError) Unwrap() error {
	return e.Err
}
