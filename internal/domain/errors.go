package domain

import "errors"

var (
	// ErrMissingParameter is returned when a required seed parameter has no value.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrInvalidParameter is returned when a seed parameter value does not
	// match the parameter's pattern.
	ErrInvalidParameter = errors.New("invalid parameter value")

	// ErrInvalidScore is returned when a scorer produces a value outside 0..5.
	ErrInvalidScore = errors.New("score out of range")
)
