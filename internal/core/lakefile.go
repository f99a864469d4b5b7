package core

import (
	"fmt"
	"strings"

	"lakekit/internal/types"
)

// RenderSkeleton produces a minimal valid lakefile.toml for a project that
// has none yet.
func RenderSkeleton(name string) string {
	return fmt.Sprintf("name = %q\nversion = \"0.1.0\"\n", name)
}

// RenderRequireBlock renders one [[require]] entry for appending to
// lakefile.toml. The rev field is omitted for unpinned declarations.
func RenderRequireBlock(dep types.Dependency) string {
	var b strings.Builder
	b.WriteString("[[require]]\n")
	fmt.Fprintf(&b, "name = %q\n", dep.Name)
	fmt.Fprintf(&b, "scope = %q\n", dep.Scope)
	if dep.Version != "" {
		fmt.Fprintf(&b, "rev = %q\n", dep.Version)
	}
	return b.String()
}

// LooksLikeFlagError reports whether a failed command complained about an
// unrecognized flag, which is the one condition that triggers a retry with
// a reduced flag set.
func LooksLikeFlagError(result types.CommandResult) bool {
	output := strings.ToLower(result.Stdout + "\n" + result.Stderr)
	if !strings.Contains(output, "unknown") &&
		!strings.Contains(output, "unrecognized") &&
		!strings.Contains(output, "invalid") {
		return false
	}
	return strings.Contains(output, "flag") ||
		strings.Contains(output, "option") ||
		strings.Contains(output, "reconfigure")
}
