package services

import "errors"

// Sentinel errors controllers map to HTTP statuses with errors.Is.
// Anything else surfaces as a generic 500.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrForbidden  = errors.New("forbidden")
)
