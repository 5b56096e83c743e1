package models

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")

	// ErrRootNotFound marks an invalid scan root (missing or not a
	// directory). The CLI validates roots before invoking the engine.
	ErrRootNotFound = errors.New("scan root not found")
)
