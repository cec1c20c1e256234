package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkgctl/pkgctl/internal/clock"
	"github.com/pkgctl/pkgctl/internal/config"
	"github.com/pkgctl/pkgctl/internal/engine"
	"github.com/pkgctl/pkgctl/internal/fsops"
	"github.com/pkgctl/pkgctl/internal/gitx"
	"github.com/pkgctl/pkgctl/internal/registry"
	"github.com/pkgctl/pkgctl/internal/scaffold"
)

// stdin is the confirmation prompt input, replaceable in tests.
var stdin io.Reader = os.Stdin

// newEngine creates an engine with real implementations of all dependencies.
func newEngine() (*engine.Engine, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.Resolve(cwd, gitx.NewRealRepoFinder(), registryFlag)
	if err != nil {
		return nil, err
	}

	fs := fsops.NewRealFS()
	store := registry.NewStore(fs, cfg.RegistryPath)

	var renderer scaffold.Renderer = scaffold.EmptyRenderer{}
	if templatesFlag {
		renderer = scaffold.NewTemplateRenderer()
	}

	return engine.New(fs, store, renderer, &clock.RealClock{}, *cfg), nil
}

// promptConfirm prompts the user for a yes/no confirmation.
// Anything other than "y" or "yes" declines.
func promptConfirm(prompt string) bool {
	fmt.Printf("%s (y/N): ", prompt)
	reader := bufio.NewReader(stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

// requireInteractive refuses to prompt when stdin is not a terminal.
func requireInteractive() error {
	f, ok := stdin.(*os.File)
	if !ok || f != os.Stdin {
		// Test harness supplied its own reader
		return nil
	}
	fi, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat stdin: %w", err)
	}
	if fi.Mode()&os.ModeCharDevice == 0 {
		return errors.New("refusing to prompt on non-interactive stdin; use --yes to confirm")
	}
	return nil
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
