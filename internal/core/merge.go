package core

import (
	"sort"

	"lakekit/internal/types"
)

// ContainsEquivalent reports whether deps already holds a declaration
// strictly equivalent to dep (scope, name, and version all equal).
func ContainsEquivalent(deps []types.Dependency, dep types.Dependency) bool {
	for _, existing := range deps {
		if existing.Equal(dep) {
			return true
		}
	}
	return false
}

// MergeDeclarations appends each candidate unless a strictly equivalent
// declaration is already present. The result never holds two equivalent
// entries.
func MergeDeclarations(deps []types.Dependency, candidates ...types.Dependency) []types.Dependency {
	for _, candidate := range candidates {
		if ContainsEquivalent(deps, candidate) {
			continue
		}
		deps = append(deps, candidate)
	}
	return deps
}

// DeclarationsFromLockManifest derives declarations from the lock
// manifest's package records. The record named after the hosting project
// is skipped (self-reference), as are records with no name at all.
func DeclarationsFromLockManifest(manifest types.LockManifest, projectName string) []types.Dependency {
	var deps []types.Dependency
	for _, pkg := range manifest.Packages {
		if pkg.Name == "" || pkg.Name == projectName {
			continue
		}
		scope, name := DeriveScopeName(pkg.SourceURL(), pkg.Name)
		deps = append(deps, types.Dependency{Scope: scope, Name: name})
	}
	return deps
}

// DeclarationsFromLakefile derives declarations from both dependency
// shapes of the declarative config. Table entries derive their scope from
// the git URL; require blocks lacking an explicit scope do the same.
func DeclarationsFromLakefile(lakefile types.Lakefile) []types.Dependency {
	var deps []types.Dependency

	names := make([]string, 0, len(lakefile.Dependencies))
	for name := range lakefile.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		table := lakefile.Dependencies[name]
		scope, _ := DeriveScopeName(table.Git, name)
		deps = append(deps, types.Dependency{Scope: scope, Name: name, Version: table.Pin()})
	}

	for _, block := range lakefile.Require {
		scope, name := block.Scope, block.Name
		if scope == "" && block.Git != "" {
			scope, name = DeriveScopeName(block.Git, block.Name)
		}
		if name == "" {
			continue
		}
		if scope == "" {
			scope = FallbackScope
		}
		deps = append(deps, types.Dependency{Scope: scope, Name: name, Version: block.Rev})
	}
	return deps
}

// SortDeclarations orders a dependency set by identifier for stable
// presentation. Insertion order carries no meaning.
func SortDeclarations(deps []types.Dependency) {
	sort.Slice(deps, func(i, j int) bool {
		return deps[i].Identifier() < deps[j].Identifier()
	})
}
