package store

import "errors"

var (
	// ErrValidation marks rejected input. The snapshot is left unchanged.
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
)
