// Package apperr defines the error kinds the HTTP layer maps onto status
// codes. Services wrap these with fmt.Errorf("%w: ...") so the caller can
// both classify the error with errors.Is and read which precondition failed.
// Anything not wrapping one of these sentinels is treated as a store failure.
package apperr

import "errors"

var (
	// ErrNotFound - a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation - malformed input (empty item list, non-positive quantity).
	ErrValidation = errors.New("invalid input")
	// ErrConflict - a state-machine precondition failed (double booking,
	// checkout without an open session, order against a closed session).
	ErrConflict = errors.New("conflict")
)
