package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/pkgctl/pkgctl/internal/engine"
)

// runDelete removes a package after displaying advisory metadata and
// getting explicit confirmation. Declining is a clean, non-error exit.
func runDelete(eng *engine.Engine, name string) error {
	info, err := eng.Inspect(name)
	if err != nil {
		return err
	}

	if !jsonOutput {
		printDeleteInfo(info)
	}

	if !yesFlag {
		if err := requireInteractive(); err != nil {
			return err
		}

		if !promptConfirm(fmt.Sprintf("Do you really want to delete %q?", name)) {
			PrintInfo("Stopping delete...")
			return nil
		}
	}

	result, err := eng.Delete(name)
	if err != nil {
		if errors.Is(err, engine.ErrRegistrySync) {
			PrintWarning("Registry now references a nonexistent path; edit the registry or re-run delete")
		}
		if jsonOutput {
			return outputDeleteJSON(result, err)
		}
		return err
	}

	if jsonOutput {
		return outputDeleteJSON(result, nil)
	}

	if result.DirRemoved {
		PrintSuccess(fmt.Sprintf("Deleted package %q", result.Name))
	}
	if result.EntryRemoved {
		PrintInfo(fmt.Sprintf("Removed %q from node registry", result.Name))
	} else {
		PrintWarning("Package was not in the node registry")
	}
	return nil
}

// printDeleteInfo displays the advisory metadata for a pending delete.
func printDeleteInfo(info *engine.DeleteInfo) {
	PrintInfo(fmt.Sprintf("Found package: %s", info.Name))
	if info.OnDisk {
		PrintLabelValue("Path", info.AbsPath)
		PrintLabelValue("Size (bytes)", fmt.Sprintf("%d", info.SizeBytes))
		if !info.ModTime.IsZero() {
			PrintLabelValue("Modified", fmt.Sprintf("%s (%s ago)",
				info.ModTime.Format("2006-01-02 15:04:05"), info.Age.Round(time.Second)))
		}
	} else {
		PrintWarning(fmt.Sprintf("Directory missing on disk; registered at '%s'", info.RegisteredPath))
		PrintInfo("Only the registry entry will be removed")
	}
}

// outputDeleteJSON outputs the delete result in JSON format.
func outputDeleteJSON(result *engine.DeleteResult, err error) error {
	output := map[string]any{
		"success": err == nil,
	}

	if result != nil {
		output["name"] = result.Name
		output["dirRemoved"] = result.DirRemoved
		output["entryRemoved"] = result.EntryRemoved
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
