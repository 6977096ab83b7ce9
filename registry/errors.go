package registry

import "errors"

// Sentinel errors for registry operations.
var (
	// ErrInvalidRegistration indicates an empty name or nil factory.
	ErrInvalidRegistration = errors.New("registry: invalid registration")

	// ErrDuplicateName indicates the name is already registered.
	ErrDuplicateName = errors.New("registry: name already registered")

	// ErrNotRegistered indicates no factory is registered under the name.
	ErrNotRegistered = errors.New("registry: name not registered")
)
