// Package shared provides common utility functions used across multiple
// packages in the lakekit codebase.
package shared

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandUser replaces a leading ~ with the current user's home directory.
// Paths without a tilde prefix are returned unchanged.
func ExpandUser(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}
