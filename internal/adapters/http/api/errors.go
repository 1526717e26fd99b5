package api

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest = errors.New("bad request")
)

func errMissingField(field string) error {
	return fmt.Errorf("%w: missing required field %q", ErrBadRequest, field)
}

func errUnknownFormat(format string) error {
	return fmt.Errorf("%w: unknown export format %q", ErrBadRequest, format)
}
