package repository

import "errors"

var (
	// ErrNotFound is returned when a referenced identity is absent from a
	// store. It is the only typed failure the data layer produces; an empty
	// result from a list or filter is a success, never ErrNotFound.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)
