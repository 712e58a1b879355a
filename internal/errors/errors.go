package errors

import "errors"

// Common application errors for type-safe error handling.
// These errors can be checked using errors.Is() instead of string comparison.
var (
	// ErrInvalidInput covers malformed image bytes, missing or invalid paths,
	// empty label sets and bad dimensions.
	ErrInvalidInput = errors.New("invalid input")
	// ErrIOFailure covers temporary files, the output directory and encoding.
	ErrIOFailure    = errors.New("io failure")
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal server error")
)
