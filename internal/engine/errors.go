package engine

import "errors"

var (
	// ErrInvalidName indicates the package name fails the naming policy.
	ErrInvalidName = errors.New("invalid package name")

	// ErrAlreadyExists indicates the create target collides with a directory
	// on disk or an entry in the registry.
	ErrAlreadyExists = errors.New("package already exists")

	// ErrNotFound indicates the package is absent from both disk and registry.
	ErrNotFound = errors.New("package not found")

	// ErrCreateFailed indicates the directory tree was only partially
	// materialized. The registry was not touched.
	ErrCreateFailed = errors.New("package creation failed")

	// ErrRegistrySync indicates the filesystem and the registry now
	// disagree: a directory exists without an entry, or an entry references
	// a removed directory. Recovery is a manual follow-up run or a manual
	// registry edit.
	ErrRegistrySync = errors.New("registry out of sync")
)
