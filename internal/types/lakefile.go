package types

// Lakefile models the subset of lakefile.toml this tool reads. Two
// dependency shapes coexist for backward compatibility: a table keyed by
// package name ([dependencies.<name>]) and repeatable [[require]] blocks.
type Lakefile struct {
	Name         string                     `toml:"name"`
	Version      string                     `toml:"version"`
	Dependencies map[string]DependencyTable `toml:"dependencies"`
	Require      []RequireBlock             `toml:"require"`
}

// DependencyTable is the legacy [dependencies.<name>] shape. The package
// name is the table key; the pin is whichever of branch/rev/tag is set.
type DependencyTable struct {
	Git    string `toml:"git"`
	Branch string `toml:"branch"`
	Rev    string `toml:"rev"`
	Tag    string `toml:"tag"`
}

// Pin returns the version pin of a table entry, if any.
func (t DependencyTable) Pin() string {
	switch {
	case t.Rev != "":
		return t.Rev
	case t.Branch != "":
		return t.Branch
	default:
		return t.Tag
	}
}

// RequireBlock is the newer [[require]] shape.
type RequireBlock struct {
	Name  string `toml:"name"`
	Scope string `toml:"scope"`
	Rev   string `toml:"rev"`
	Git   string `toml:"git"`
}
