package util

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateRelPath checks a library-relative path taken from user input
// (series or chapter names in API routes). It rejects anything that could
// escape the library roots.
func ValidateRelPath(rel string) error {
	if rel == "" {
		return fmt.Errorf("path cannot be empty")
	}
	if strings.Contains(rel, "..") {
		return fmt.Errorf("path contains invalid directory traversal")
	}
	if filepath.IsAbs(rel) || strings.HasPrefix(rel, "/") || strings.HasPrefix(rel, "\\") {
		return fmt.Errorf("path must be relative to a library root")
	}
	return nil
}
