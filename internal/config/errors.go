package config

import "errors"

var (
	// ErrInsufficientArguments is returned when the query or filename argument is missing.
	ErrInsufficientArguments = errors.New("not enough arguments")
	// ErrInvalidSettings is returned when logging settings cannot be applied.
	ErrInvalidSettings = errors.New("invalid settings")
)
