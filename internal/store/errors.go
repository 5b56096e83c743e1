package store

import "errors"

var (
	ErrNotFound = errors.New("store: scan not found")
	ErrConflict = errors.New("store: conflicting scan id")
)
