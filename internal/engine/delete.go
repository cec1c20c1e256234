package engine

import (
	"fmt"
	"path/filepath"
)

// Inspect gathers the advisory metadata shown before a delete is confirmed.
// Returns ErrNotFound if the package is absent from both disk and registry.
func (e *Engine) Inspect(name string) (*DeleteInfo, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	target := filepath.Join(e.cfg.WorkingDir, name)

	onDisk, err := e.fs.Exists(target)
	if err != nil {
		return nil, fmt.Errorf("failed to check target path: %w", err)
	}

	doc, err := e.store.Load()
	if err != nil {
		return nil, err
	}
	entry, registered := doc.Find(name)

	if !onDisk && !registered {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	info := &DeleteInfo{
		Name:           name,
		AbsPath:        target,
		OnDisk:         onDisk,
		Registered:     registered,
		RegisteredPath: entry.Path,
	}

	// Size and timestamps are advisory; stat failures leave them zero.
	if onDisk {
		if size, err := e.fs.DirSize(target); err == nil {
			info.SizeBytes = size
		}
		if fi, err := e.fs.Stat(target); err == nil {
			info.ModTime = fi.ModTime()
			info.Age = e.clock.Now().Sub(fi.ModTime())
		}
	}

	return info, nil
}

// Delete removes the package directory and its registry entry.
// Algorithm steps:
// 1. Validate the name against the naming policy
// 2. Load the registry and locate the package on disk and in the registry
// 3. Remove the directory tree
// 4. Remove the registry entry and persist
//
// The caller is responsible for confirmation; Delete mutates unconditionally.
func (e *Engine) Delete(name string) (*DeleteResult, error) {
	// Step 1: Validate name
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	target := filepath.Join(e.cfg.WorkingDir, name)

	// Step 2: Locate. The registry is loaded before any mutation so an
	// unreadable registry aborts with the directory intact.
	onDisk, err := e.fs.Exists(target)
	if err != nil {
		return nil, fmt.Errorf("failed to check target path: %w", err)
	}

	doc, err := e.store.Load()
	if err != nil {
		return nil, err
	}
	_, registered := doc.Find(name)

	if !onDisk && !registered {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	// Step 3: Remove the directory tree
	if onDisk {
		if err := e.fs.RemoveAll(target); err != nil {
			return nil, fmt.Errorf("failed to remove package directory '%s': %w", target, err)
		}
	}

	// Step 4: Commit the registry removal. A failure here leaves an entry
	// referencing a directory that no longer exists.
	if registered {
		doc.Remove(name)
		if err := e.store.Save(doc); err != nil {
			if onDisk {
				return nil, fmt.Errorf("%w: directory '%s' removed but registry still lists %q: %v", ErrRegistrySync, target, name, err)
			}
			return nil, err
		}
	}

	return &DeleteResult{
		Name:         name,
		DirRemoved:   onDisk,
		EntryRemoved: registered,
	}, nil
}
