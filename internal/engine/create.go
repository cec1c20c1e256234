package engine

import (
	"fmt"
	"path/filepath"

	"github.com/pkgctl/pkgctl/internal/registry"
	"github.com/pkgctl/pkgctl/internal/scaffold"
)

// Create scaffolds a new package directory and registers it.
// Algorithm steps:
// 1. Validate the name against the naming policy
// 2. Check the target directory on disk, then the registry, for collisions
// 3. Materialize the fixed directory tree and rendered files
// 4. Append the registry entry and persist
func (e *Engine) Create(name string) (*CreateResult, error) {
	// Step 1: Validate name
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	target := filepath.Join(e.cfg.WorkingDir, name)

	relPath, err := filepath.Rel(e.cfg.RepoRoot, target)
	if err != nil {
		return nil, fmt.Errorf("failed to compute registry path: %w", err)
	}
	relPath = filepath.ToSlash(relPath)

	// Step 2: Existence checks, disk first, then registry. Either collision
	// is fatal before any mutation.
	onDisk, err := e.fs.Exists(target)
	if err != nil {
		return nil, fmt.Errorf("failed to check target path: %w", err)
	}
	if onDisk {
		return nil, fmt.Errorf("%w: %q already exists at '%s'", ErrAlreadyExists, name, target)
	}

	doc, err := e.store.Load()
	if err != nil {
		return nil, err
	}
	if entry, ok := doc.Find(name); ok {
		return nil, fmt.Errorf("%w: %q already registered at '%s'", ErrAlreadyExists, name, entry.Path)
	}

	// Step 3: Materialize directories and files. Partial failure is left in
	// place; the registry has not been touched yet.
	for _, dir := range scaffold.Dirs {
		if err := e.fs.MkdirAll(filepath.Join(target, dir), 0755); err != nil {
			return nil, fmt.Errorf("%w: creating %s/: %v", ErrCreateFailed, dir, err)
		}
	}

	ctx := scaffold.Context{Name: name, RelPath: relPath, Target: registry.NodeTarget}
	for _, kind := range scaffold.Files {
		content, err := e.renderer.Render(kind, ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: rendering %s: %v", ErrCreateFailed, kind, err)
		}
		if err := e.fs.WriteFile(filepath.Join(target, string(kind)), content, 0644); err != nil {
			return nil, fmt.Errorf("%w: writing %s: %v", ErrCreateFailed, kind, err)
		}
	}

	// Step 4: Commit the registry entry. A failure here leaves the created
	// directory on disk but unregistered.
	doc.Add(registry.Entry{
		Name:   name,
		Path:   relPath,
		Target: registry.NodeTarget,
		Type:   registry.NodeType,
	})
	if err := e.store.Save(doc); err != nil {
		return nil, fmt.Errorf("%w: package directory created at '%s' but not registered: %v", ErrRegistrySync, target, err)
	}

	return &CreateResult{
		Name:    name,
		AbsPath: target,
		RelPath: relPath,
	}, nil
}
