// Package policies holds the duplicate-detection rules applied when a
// dependency declaration is installed into a project.
package policies

import "lakekit/internal/types"

// IsInstallMatch reports whether an existing declaration already satisfies
// an install request. The match keys on scope and name only: an unpinned
// request is satisfied by any already-pinned entry, and a request with a
// different explicit pin never appends a second entry for the same package
// (the existing pin is left alone). This is deliberately looser than the
// strict equivalence used when merging loaded state.
func IsInstallMatch(existing, requested types.Dependency) bool {
	return existing.Scope == requested.Scope && existing.Name == requested.Name
}

// HasInstallMatch reports whether any declaration in deps satisfies the
// install request.
func HasInstallMatch(deps []types.Dependency, requested types.Dependency) bool {
	for _, existing := range deps {
		if IsInstallMatch(existing, requested) {
			return true
		}
	}
	return false
}
