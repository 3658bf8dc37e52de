package tour

import "errors"

// Section registry errors.
var (
	// ErrSectionNotFound is returned when a section is not registered.
	ErrSectionNotFound = errors.New("section not found")

	// ErrSectionNameEmpty is returned when a section has no name.
	ErrSectionNameEmpty = errors.New("section name cannot be empty")

	// ErrSectionRunNil is returned when a section has no run function.
	ErrSectionRunNil = errors.New("section run function cannot be nil")

	// ErrSectionAlreadyRegistered is returned when registering a duplicate.
	ErrSectionAlreadyRegistered = errors.New("section already registered")
)
