package entities

import "errors"

var (
	// ErrConfigNotFound is returned when no manifest exists in the default locations.
	ErrConfigNotFound = errors.New("config file not found in default locations")

	// ErrUnknownService is returned when a port is requested for a service absent from the port tables.
	ErrUnknownService = errors.New("unknown service")

	// ErrCloneFailures is returned when at least one repository could not be cloned.
	ErrCloneFailures = errors.New("some repositories failed to clone")

	// ErrBrokenReferences is returned when validation found at least one error.
	ErrBrokenReferences = errors.New("markdown validation failed")

	// ErrInconsistentManifest is returned by a strict consistency check that found problems.
	ErrInconsistentManifest = errors.New("manifest is inconsistent")
)
