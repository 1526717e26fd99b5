package repository

import "errors"

// Sentinel kinds for directory errors.
var (
	ErrNotFound    = errors.New("entity not found")
	ErrDuplicateID = errors.New("duplicate entity id")
)
