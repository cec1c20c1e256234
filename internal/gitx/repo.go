// Package gitx locates the monorepo root.
//
// The registry file lives at the repository root, so discovery walks up
// from the working directory looking for the .git entry. Discovery is an
// interface so config resolution can be tested without a real checkout.
package gitx

import (
	"fmt"
	"os"
	"path/filepath"
)

// RepoFinder discovers the repository root for a working directory.
type RepoFinder interface {
	// Discover finds the repository root starting from cwd.
	Discover(cwd string) (root string, err error)
}

// RealRepoFinder implements RepoFinder against the actual filesystem.
type RealRepoFinder struct{}

// NewRealRepoFinder creates a new RealRepoFinder.
func NewRealRepoFinder() *RealRepoFinder {
	return &RealRepoFinder{}
}

// Discover finds the repository root by walking up from cwd looking for a
// .git directory.
func (g *RealRepoFinder) Discover(cwd string) (string, error) {
	absPath, err := filepath.Abs(cwd)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	current := absPath
	for {
		gitDir := filepath.Join(current, ".git")
		if info, err := os.Stat(gitDir); err == nil {
			// .git can be a directory or a file (for worktrees/submodules)
			if info.IsDir() || info.Mode().IsRegular() {
				return current, nil
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Reached root directory
			return "", fmt.Errorf("not in a git repository")
		}
		current = parent
	}
}

// FakeRepoFinder implements RepoFinder with a predetermined root for testing.
type FakeRepoFinder struct {
	root string
	err  error
}

// NewFakeRepoFinder creates a new FakeRepoFinder rooted at root.
func NewFakeRepoFinder(root string) *FakeRepoFinder {
	return &FakeRepoFinder{root: root}
}

// SetError sets an error to be returned by Discover.
func (g *FakeRepoFinder) SetError(err error) {
	g.err = err
}

// Discover returns the predetermined root.
func (g *FakeRepoFinder) Discover(cwd string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.root, nil
}
