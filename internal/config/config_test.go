package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkgctl/pkgctl/internal/gitx"
)

func TestResolve_FlagWins(t *testing.T) {
	root := t.TempDir()
	regPath := filepath.Join(root, "custom_registry.json")
	t.Setenv("PKGCTL_REGISTRY", filepath.Join(root, "env_registry.json"))

	cfg, err := Resolve(root, gitx.NewFakeRepoFinder(root), regPath)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if cfg.RegistryPath != regPath {
		t.Errorf("expected flag to win, got %q", cfg.RegistryPath)
	}
}

func TestResolve_EnvOverride(t *testing.T) {
	root := t.TempDir()
	regPath := filepath.Join(root, "env_registry.json")
	t.Setenv("PKGCTL_REGISTRY", regPath)

	cfg, err := Resolve(root, gitx.NewFakeRepoFinder(root), "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if cfg.RegistryPath != regPath {
		t.Errorf("expected PKGCTL_REGISTRY to apply, got %q", cfg.RegistryPath)
	}
}

func TestResolve_DiscoversExistingRegistry(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, RegistryFileName), []byte("{\"nodes\": []}\n"), 0644); err != nil {
		t.Fatalf("failed to seed registry: %v", err)
	}
	cwd := filepath.Join(root, "src", "nested")
	if err := os.MkdirAll(cwd, 0755); err != nil {
		t.Fatalf("failed to create cwd: %v", err)
	}

	// The finder would report no repository; discovery must come from the
	// registry file itself.
	finder := gitx.NewFakeRepoFinder("")
	finder.SetError(os.ErrNotExist)

	cfg, err := Resolve(cwd, finder, "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if cfg.RepoRoot != root {
		t.Errorf("expected RepoRoot=%s, got %s", root, cfg.RepoRoot)
	}
	if cfg.RegistryPath != filepath.Join(root, RegistryFileName) {
		t.Errorf("unexpected RegistryPath %q", cfg.RegistryPath)
	}
	if cfg.WorkingDir != cwd {
		t.Errorf("expected WorkingDir=%s, got %s", cwd, cfg.WorkingDir)
	}
}

func TestResolve_FallsBackToGitRoot(t *testing.T) {
	root := t.TempDir()
	cwd := filepath.Join(root, "src")
	if err := os.MkdirAll(cwd, 0755); err != nil {
		t.Fatalf("failed to create cwd: %v", err)
	}

	cfg, err := Resolve(cwd, gitx.NewFakeRepoFinder(root), "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if cfg.RegistryPath != filepath.Join(root, RegistryFileName) {
		t.Errorf("expected registry at repo root, got %q", cfg.RegistryPath)
	}
}

func TestResolve_ConfigFile(t *testing.T) {
	root := t.TempDir()
	regPath := filepath.Join(root, "registries", "nodes.json")
	content := "registry: " + regPath + "\n"
	if err := os.WriteFile(filepath.Join(root, ".pkgctl.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Resolve(root, gitx.NewFakeRepoFinder(root), "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if cfg.RegistryPath != regPath {
		t.Errorf("expected registry from .pkgctl.yaml, got %q", cfg.RegistryPath)
	}
}

func TestResolve_NoRepository(t *testing.T) {
	finder := gitx.NewFakeRepoFinder("")
	finder.SetError(os.ErrNotExist)

	_, err := Resolve(t.TempDir(), finder, "")
	if err == nil {
		t.Fatal("expected an error outside any repository")
	}
	if !strings.Contains(err.Error(), RegistryFileName) {
		t.Errorf("expected error to mention %s, got %v", RegistryFileName, err)
	}
}
