package service

import "errors"

// Sentinel kinds for registration errors.
var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrCapacityLimit  = errors.New("requested capacity exceeds limit")
	ErrInvalidLevel   = errors.New("unknown experience level")
)
