// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

// Validation failure kinds. Every error returned by this package is a
// [*FieldError] whose Kind is one of these sentinels, so callers can match
// with errors.Is.
var (
	ErrMissingField   = errors.New("field is required")
	ErrInvalidFormat  = errors.New("invalid format")
	ErrNotANumber     = errors.New("must be a number")
	ErrOutOfRange     = errors.New("value out of range")
	ErrInvalidPayload = errors.New("invalid payload")
)

// FieldError reports which field failed validation and why.
type FieldError struct {
	Field string
	Kind  error
}

func newFieldError(field string, kind error) *FieldError {
	return &FieldError{Field: field, Kind: kind}
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return e.Field + ": " + e.Kind.Error()
}

// Unwrap returns the failure kind.
func (e *FieldError) Unwrap() error {
	return e.Kind
}
