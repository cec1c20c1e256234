// Package engine implements the package lifecycle: create, delete, find.
//
// The engine orchestrates existence checks across disk and registry,
// directory materialization, and registry mutation. All failures are
// terminal for the invocation; there is no retry and no rollback. A failed
// step leaves the filesystem and registry in the partial state reached so
// far, and the error taxonomy (errors.go) tells the caller which partial
// state that is.
package engine

import (
	"github.com/pkgctl/pkgctl/internal/clock"
	"github.com/pkgctl/pkgctl/internal/config"
	"github.com/pkgctl/pkgctl/internal/fsops"
	"github.com/pkgctl/pkgctl/internal/registry"
	"github.com/pkgctl/pkgctl/internal/scaffold"
)

// Engine orchestrates all pkgctl operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs       fsops.FS
	store    *registry.Store
	renderer scaffold.Renderer
	clock    clock.Clock
	cfg      config.Config
}

// New creates a new Engine with the given dependencies.
func New(
	fs fsops.FS,
	store *registry.Store,
	renderer scaffold.Renderer,
	clk clock.Clock,
	cfg config.Config,
) *Engine {
	return &Engine{
		fs:       fs,
		store:    store,
		renderer: renderer,
		clock:    clk,
		cfg:      cfg,
	}
}
