package model

import "errors"

// Sentinel kinds for lifecycle violations. These allow errors.Is from callers.
var (
	ErrAlreadyActive = errors.New("match already active")
	ErrTerminalState = errors.New("match in terminal state")
)
