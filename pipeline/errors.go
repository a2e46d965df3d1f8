package pipeline

import "errors"

// Error kinds raised during configuration and evaluation. Wrapped errors
// carry the offending key or value; match with errors.Is.
var (
	// ErrMissingInput: a required named input is absent from the request.
	ErrMissingInput = errors.New("missing required input")

	// ErrUnresolvable: flow rate, velocity, density, viscosity, or
	// diameter cannot be derived from any available combination of
	// inputs.
	ErrUnresolvable = errors.New("unresolvable quantity")

	// ErrInvalidValue: a supplied value violates a physical constraint.
	ErrInvalidValue = errors.New("invalid value")

	// ErrTypeMismatch: a network element has no recognized flow model,
	// or a value cannot be interpreted as numeric.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrUnsupported: the requested operation needs data the
	// configuration does not carry, e.g. a diameter-dependent fitting
	// property without a diameter.
	ErrUnsupported = errors.New("unsupported configuration")
)
