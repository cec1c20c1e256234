// Package config resolves where pkgctl operates: the working directory,
// the repository root, and the registry file location.
//
// Resolution happens once at startup and the result is passed down
// explicitly; nothing below this package consults the environment or the
// process working directory. Precedence for the registry location:
//
//	--registry flag > PKGCTL_REGISTRY env > .pkgctl.yaml at the repo root
//	> <repo root>/node_registry.json
//
// The repository root comes from PKGCTL_ROOT, else from walking up from
// the working directory for an existing node_registry.json, else from the
// .git root.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/pkgctl/pkgctl/internal/gitx"
)

// RegistryFileName is the fixed name of the registry file at the repo root.
const RegistryFileName = "node_registry.json"

// Config holds the resolved paths for one invocation.
type Config struct {
	// WorkingDir is the directory packages are created in and deleted from
	WorkingDir string

	// RepoRoot is the repository root; registry paths are recorded relative to it
	RepoRoot string

	// RegistryPath is the absolute path of the registry file
	RegistryPath string
}

// Resolve resolves the configuration for an invocation rooted at cwd.
// registryFlag is the value of --registry, empty if not set.
func Resolve(cwd string, finder gitx.RepoFinder, registryFlag string) (*Config, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("PKGCTL")
	v.AutomaticEnv()
	if registryFlag != "" {
		v.Set("registry", registryFlag)
	}

	root := v.GetString("root")
	if root == "" {
		if found, ok := findRegistryRoot(absCwd); ok {
			root = found
		} else if discovered, derr := finder.Discover(absCwd); derr == nil {
			root = discovered
		}
	}

	// Optional per-repo config file
	if root != "" {
		v.SetConfigName(".pkgctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(root)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	registryPath := v.GetString("registry")
	if registryPath == "" {
		if root == "" {
			return nil, fmt.Errorf("unable to locate %s: not inside a repository (set --registry or PKGCTL_REGISTRY)", RegistryFileName)
		}
		registryPath = filepath.Join(root, RegistryFileName)
	} else {
		registryPath, err = filepath.Abs(registryPath)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve registry path: %w", err)
		}
		if root == "" {
			root = filepath.Dir(registryPath)
		}
	}

	return &Config{
		WorkingDir:   absCwd,
		RepoRoot:     root,
		RegistryPath: registryPath,
	}, nil
}

// findRegistryRoot walks up from dir looking for an existing registry file.
func findRegistryRoot(dir string) (string, bool) {
	current := dir
	for {
		candidate := filepath.Join(current, RegistryFileName)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return current, true
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}
