package store

import "errors"

var (
	// ErrCapacity is returned when an add would push the list past MaxEntries.
	ErrCapacity = errors.New("store: capacity exceeded")
	// ErrOutOfRange is returned for an index outside [0, Len).
	ErrOutOfRange = errors.New("store: index out of range")
	// ErrInvalidValue is returned by callers that validate rather than clamp.
	ErrInvalidValue = errors.New("store: value outside allowed range")
)
