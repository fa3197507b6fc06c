package errors

import "errors"

var (
	// ErrInvalidCollection means a store accepted a key as valid but produced
	// no collection for it. Callers should treat it as a store defect.
	ErrInvalidCollection = errors.New("store returned no collection for a valid key")
	ErrInvalidSearch     = errors.New("invalid team search")
	ErrConflict          = errors.New("lookup conflict")
)
