// Package registry reads and writes the node registry document.
//
// The registry file (node_registry.json at the repository root) is the sole
// source of truth for which packages exist and where. The store does a full
// load-modify-save cycle per invocation rather than caching, so separate
// tool runs never act on stale state. There is no cross-process locking:
// two concurrent invocations can clobber each other's load-modify-save
// cycle. The save itself is atomic (temp file + rename), so readers never
// observe a torn file.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pkgctl/pkgctl/internal/fsops"
)

var (
	// ErrUnreadable indicates the registry file is missing, unparsable, or
	// could not be read.
	ErrUnreadable = errors.New("registry unreadable")

	// ErrWriteFailed indicates the registry file could not be persisted.
	ErrWriteFailed = errors.New("registry write failed")
)

// Store reads and writes the registry document at a fixed path.
type Store struct {
	fs   fsops.FS
	path string
}

// NewStore creates a Store for the registry file at path.
func NewStore(fs fsops.FS, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the registry file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads and parses the registry document.
func (s *Store) Load() (*Document, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, s.path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, s.path, err)
	}

	if doc.Nodes == nil {
		doc.Nodes = []Entry{}
	}

	return &doc, nil
}

// Save serializes the document with sorted keys, 2-space indentation, and a
// trailing newline, then overwrites the registry file atomically.
func (s *Store) Save(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	data = append(data, '\n')

	if err := s.fs.AtomicWrite(s.path, data, 0644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, s.path, err)
	}

	return nil
}
