package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrInvalidArgument indicates a caller broke an argument contract
	// (empty filename, empty view name, nil view locations).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidConfig indicates a designer view sidecar could not be parsed.
	ErrInvalidConfig = errors.New("invalid view config")

	// ErrValidation indicates a configuration schema validation failure.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a widget, view, or file was not found.
	ErrNotFound = errors.New("not found")
)
