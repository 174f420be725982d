package domain

import "errors"

var (
	// ErrInvalidArgument is returned for inputs an operation cannot accept,
	// such as a blank requirement.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAlreadyExists is returned when an export would replace an existing
	// file and overwriting was disabled.
	ErrAlreadyExists = errors.New("already exists")

	// ErrNotFound is returned when a project file does not exist.
	ErrNotFound = errors.New("not found")

	// ErrMalformedInput is returned when a project file is not valid JSON.
	ErrMalformedInput = errors.New("malformed input")
)
