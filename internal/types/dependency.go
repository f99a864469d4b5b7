package types

// Dependency declares one external Lake package requirement. Version is a
// tag, branch, or revision; an empty version means unpinned (latest).
type Dependency struct {
	Scope   string
	Name    string
	Version string
	Cache   bool
}

// Identifier returns the Lake package identifier, e.g. "scope/name" or
// "scope/name@version" when a version pin is present.
func (d Dependency) Identifier() string {
	base := d.Scope + "/" + d.Name
	if d.Version != "" {
		return base + "@" + d.Version
	}
	return base
}

// Equal reports strict equivalence: scope, name, and version all match.
// An unset version only matches another unset version.
func (d Dependency) Equal(other Dependency) bool {
	return d.Scope == other.Scope && d.Name == other.Name && d.Version == other.Version
}
