// Package errors provides error handling for packgen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Wrap with context
//	if err := readPack(path); err != nil {
//	    return errors.Wrapf(err, "failed to read pack %s", path)
//	}
//
//	// Classify with a sentinel so callers can use errors.Is
//	return errors.Mark(errors.Newf("line %d: missing '::'", n), errors.ErrMalformedSignature)
//
//	// Add hints for users
//	return errors.WithHint(err, "declarations look like: name :: Type -> ReturnType")
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
)

// Sentinel errors for the generator pipeline.
// Wrap or Mark these to add context while preserving the type for errors.Is().
var (
	// ErrMalformedSignature indicates a declaration line that cannot be split into
	// a name and type tokens, or that is missing a mandatory return slot.
	ErrMalformedSignature = New("malformed signature")

	// ErrAmbiguousOverload indicates two overloads in the same name+arity bucket
	// that per-parameter type checks cannot tell apart. Only fatal in strict mode.
	ErrAmbiguousOverload = New("ambiguous overload")

	// ErrMissingInput indicates an unreadable or missing mandatory input
	// (source directory, metadata file).
	ErrMissingInput = New("missing input")

	// ErrInvalidConfig indicates a configuration value that fails validation
	ErrInvalidConfig = New("invalid configuration")
)

// IsMalformedSignature checks if an error is or wraps ErrMalformedSignature
func IsMalformedSignature(err error) bool {
	return err != nil && Is(err, ErrMalformedSignature)
}

// IsMissingInput checks if an error is or wraps ErrMissingInput
func IsMissingInput(err error) bool {
	return err != nil && Is(err, ErrMissingInput)
}

// NewMissingInputError creates a missing-input error with a formatted message
func NewMissingInputError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrMissingInput)
}

// NewInvalidConfigError creates an invalid-config error with a formatted message
func NewInvalidConfigError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrInvalidConfig)
}
