package gpures

import "errors"

// Package errors.
var (
	// ErrInvalidCount is returned when a set is requested with fewer than one handle.
	ErrInvalidCount = errors.New("gpures: handle count must be positive")

	// ErrNullHandle is returned when a backing system reports success but
	// hands back the Null sentinel.
	ErrNullHandle = errors.New("gpures: backend returned null handle")

	// ErrMismatch is returned when two wrappers of different kind or count
	// are swapped or moved into each other.
	ErrMismatch = errors.New("gpures: kind or count mismatch")

	// ErrUnknownKind is returned by ParseKind for unrecognised names.
	ErrUnknownKind = errors.New("gpures: unknown kind")

	// ErrUnsupportedKind is returned by a Backend that cannot manage a kind.
	ErrUnsupportedKind = errors.New("gpures: kind not supported by backend")

	// ErrAdoptOnly is returned by kinds that cannot be created without
	// arguments the wrapper does not carry (shader objects need a stage).
	ErrAdoptOnly = errors.New("gpures: kind must be adopted, not created")

	// ErrBackendClosed is returned by backends after Close.
	ErrBackendClosed = errors.New("gpures: backend closed")
)
