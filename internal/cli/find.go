package cli

import (
	"fmt"

	"github.com/pkgctl/pkgctl/internal/engine"
)

// runFind looks up a package in the registry and prints its recorded path.
func runFind(eng *engine.Engine, name string) error {
	result, err := eng.Find(name)
	if err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(map[string]any{
			"name":   result.Name,
			"path":   result.RelPath,
			"onDisk": result.OnDisk,
		})
	}

	PrintInfo(fmt.Sprintf("Package: %s", result.Name))
	PrintLabelValue("Path", result.RelPath)
	if !result.OnDisk {
		PrintWarning(fmt.Sprintf("Registered path '%s' does not exist on disk", result.AbsPath))
	}
	return nil
}
