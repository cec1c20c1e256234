package engine

import (
	"fmt"
	"regexp"
)

// namePattern is the package naming policy: snake_case, lowercase ASCII
// letters, digits, and underscore.
var namePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// ValidateName checks a package name against the naming policy. The empty
// string is rejected explicitly: an empty name resolves to the working
// directory itself.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q must be snake_case ([a-z0-9_] only)", ErrInvalidName, name)
	}
	return nil
}
