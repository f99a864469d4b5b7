package ports

import "lakekit/internal/types"

// LockManifestPort reads the machine-written lock manifest. The file is
// owned by the external toolchain and is never written by this tool.
type LockManifestPort interface {
	// Load returns the parsed manifest and whether the file was present.
	// An absent file is not an error; a malformed one is.
	Load(root string) (types.LockManifest, bool, error)
}
