package cli

import (
	"errors"
	"fmt"

	"github.com/pkgctl/pkgctl/internal/engine"
)

// runCreate scaffolds a new package and registers it.
func runCreate(eng *engine.Engine, name string) error {
	result, err := eng.Create(name)
	if err != nil {
		if errors.Is(err, engine.ErrRegistrySync) {
			// The directory was created; only the registry commit failed.
			PrintWarning("Package directory exists on disk but is not registered")
		}
		if jsonOutput {
			return outputCreateJSON(result, err)
		}
		return err
	}

	if jsonOutput {
		return outputCreateJSON(result, nil)
	}

	PrintSuccess(fmt.Sprintf("Created package %q at '%s'", result.Name, result.RelPath))
	PrintInfo("Registered in node registry")
	return nil
}

// outputCreateJSON outputs the create result in JSON format.
func outputCreateJSON(result *engine.CreateResult, err error) error {
	output := map[string]any{
		"success": err == nil,
	}

	if result != nil {
		output["name"] = result.Name
		output["path"] = result.RelPath
	}

	if err != nil {
		output["error"] = err.Error()
		if jerr := outputJSON(output); jerr != nil {
			return jerr
		}
		return err
	}

	return outputJSON(output)
}
