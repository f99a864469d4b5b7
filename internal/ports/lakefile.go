package ports

import "lakekit/internal/types"

// LakefilePort reads and mutates the declarative config file of a project.
type LakefilePort interface {
	Path(root string) string
	Exists(root string) bool

	// Load parses lakefile.toml. Malformed TOML is an error; it is never
	// silently defaulted.
	Load(root string) (types.Lakefile, error)

	// WriteSkeleton creates a minimal valid lakefile.toml.
	WriteSkeleton(root string, name string) error

	// AppendBlock appends a pre-rendered entry, preserving all existing
	// content and terminating the file with a newline.
	AppendBlock(root string, block string) error
}
