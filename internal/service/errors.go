package service

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an id (or link pair) matches no stored row.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a required field missing from a request body. It is
// always produced before any store access.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}
