package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkgctl/pkgctl/internal/clock"
	"github.com/pkgctl/pkgctl/internal/config"
	"github.com/pkgctl/pkgctl/internal/fsops"
	"github.com/pkgctl/pkgctl/internal/registry"
	"github.com/pkgctl/pkgctl/internal/scaffold"
)

// failingFS wraps a real FS and injects write failures.
type failingFS struct {
	fsops.FS
	failAtomicWrite bool
}

func (f *failingFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	if f.failAtomicWrite {
		return errors.New("disk full")
	}
	return f.FS.AtomicWrite(path, data, perm)
}

// testEnv is a temporary repo checkout with a seeded empty registry.
type testEnv struct {
	root         string
	workingDir   string
	registryPath string
	fs           *failingFS
	clock        *clock.FakeClock
	engine       *Engine
}

// newTestEnv creates a repo root with a src/ working directory and an empty
// registry, mirroring the monorepo layout the tool runs in.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	root := t.TempDir()
	workingDir := filepath.Join(root, "src")
	if err := os.MkdirAll(workingDir, 0755); err != nil {
		t.Fatalf("failed to create working dir: %v", err)
	}

	registryPath := filepath.Join(root, config.RegistryFileName)
	if err := os.WriteFile(registryPath, []byte("{\n  \"nodes\": []\n}\n"), 0644); err != nil {
		t.Fatalf("failed to seed registry: %v", err)
	}

	fs := &failingFS{FS: fsops.NewRealFS()}
	store := registry.NewStore(fs, registryPath)
	clk := clock.NewFakeClock(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC))

	cfg := config.Config{
		WorkingDir:   workingDir,
		RepoRoot:     root,
		RegistryPath: registryPath,
	}

	return &testEnv{
		root:         root,
		workingDir:   workingDir,
		registryPath: registryPath,
		fs:           fs,
		clock:        clk,
		engine:       New(fs, store, scaffold.EmptyRenderer{}, clk, cfg),
	}
}

// registryBytes returns the raw registry file contents.
func (env *testEnv) registryBytes(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(env.registryPath)
	if err != nil {
		t.Fatalf("failed to read registry: %v", err)
	}
	return data
}

// listWorkingDir returns the names of entries in the working directory.
func (env *testEnv) listWorkingDir(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(env.workingDir)
	if err != nil {
		t.Fatalf("failed to list working dir: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
