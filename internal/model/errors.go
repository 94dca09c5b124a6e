package model

import "errors"

// Errors returned by model operations.
var (
	// ErrInvalidPosition indicates an offset outside [0, Size].
	// Callers holding a stale position must re-derive it from the current
	// document and retry.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidRange indicates a range with End < Start or outside the document.
	ErrInvalidRange = errors.New("invalid range")

	// ErrInvalidValue indicates a non-scalar attribute value.
	ErrInvalidValue = errors.New("attribute value must be a string, bool or number")

	// ErrReadOnly indicates a content write on a read-only document.
	ErrReadOnly = errors.New("document is read-only")

	// ErrNoTransaction indicates a Writer used after its transaction ended.
	ErrNoTransaction = errors.New("writer used outside its transaction")
)
