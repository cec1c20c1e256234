package engine

import (
	"fmt"
	"path/filepath"
)

// Find looks up a package by name in the registry and reports where it is
// recorded, plus whether the recorded directory actually exists on disk.
func (e *Engine) Find(name string) (*FindResult, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	doc, err := e.store.Load()
	if err != nil {
		return nil, err
	}

	entry, ok := doc.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not registered", ErrNotFound, name)
	}

	absPath := filepath.Join(e.cfg.RepoRoot, filepath.FromSlash(entry.Path))
	onDisk, err := e.fs.Exists(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to check registered path: %w", err)
	}

	return &FindResult{
		Name:    name,
		RelPath: entry.Path,
		AbsPath: absPath,
		OnDisk:  onDisk,
	}, nil
}
