package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"lakekit/internal/ports"
	"lakekit/internal/types"
)

// LockManifestName is the machine-written lock manifest maintained by the
// toolchain.
const LockManifestName = "lake-manifest.json"

type LockManifestAdapter struct{}

func NewLockManifestAdapter() LockManifestAdapter {
	return LockManifestAdapter{}
}

// Load reads the lock manifest. An absent file yields ok=false with no
// error; malformed JSON is fatal because a partially-read dependency set is
// worse than a loud failure.
func (a LockManifestAdapter) Load(root string) (types.LockManifest, bool, error) {
	path := filepath.Join(root, LockManifestName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.LockManifest{}, false, nil
		}
		return types.LockManifest{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read lake-manifest.json").
			WithCause(err)
	}
	var manifest types.LockManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return types.LockManifest{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse lake-manifest.json").
			WithCause(err)
	}
	return manifest, true, nil
}

var _ ports.LockManifestPort = LockManifestAdapter{}
