package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every validation failure raised before a simulation starts.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError identifies the offending field of a rejected loan or extra-payment policy.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidInput, e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidInput) match.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}
