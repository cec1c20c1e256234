package engine

import "time"

// CreateResult represents the outcome of creating a package.
type CreateResult struct {
	// Name is the package name
	Name string

	// AbsPath is the absolute path of the created directory
	AbsPath string

	// RelPath is the path recorded in the registry, relative to the repo root
	RelPath string
}

// DeleteInfo is the advisory metadata shown before a delete is confirmed.
// Size and timestamps are display-only, not a correctness gate.
type DeleteInfo struct {
	// Name is the package name
	Name string

	// AbsPath is where the package directory is (or would be) on disk
	AbsPath string

	// OnDisk reports whether the directory exists
	OnDisk bool

	// Registered reports whether a registry entry exists
	Registered bool

	// RegisteredPath is the repo-relative path recorded in the registry
	RegisteredPath string

	// SizeBytes is the recursive size of the directory tree (0 if not on disk)
	SizeBytes int64

	// ModTime is the directory's last modification time (zero if not on disk)
	ModTime time.Time

	// Age is how long ago ModTime was
	Age time.Duration
}

// DeleteResult represents the outcome of deleting a package.
type DeleteResult struct {
	// Name is the package name
	Name string

	// DirRemoved reports whether a directory tree was removed
	DirRemoved bool

	// EntryRemoved reports whether a registry entry was removed
	EntryRemoved bool
}

// FindResult represents the outcome of looking up a package in the registry.
type FindResult struct {
	// Name is the package name
	Name string

	// RelPath is the repo-relative path recorded in the registry
	RelPath string

	// AbsPath is the registry path resolved against the repo root
	AbsPath string

	// OnDisk reports whether the recorded directory exists
	OnDisk bool
}
