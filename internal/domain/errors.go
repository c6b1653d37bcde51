package domain

import "errors"

var (
	// ErrInvalidInput marks caller errors detected before any pricing happens:
	// non-positive quantity, empty seller list, out-of-range coordinates.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLocationNotFound is returned when a buyer address cannot be resolved.
	ErrLocationNotFound = errors.New("location not found")
)
