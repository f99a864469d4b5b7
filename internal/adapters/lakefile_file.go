package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/pelletier/go-toml/v2"

	"lakekit/internal/core"
	"lakekit/internal/ports"
	"lakekit/internal/types"
)

// LakefileName is the declarative config file read and written by lakekit.
const LakefileName = "lakefile.toml"

// LakefileAdapter reads and appends to a project's lakefile.toml. Appends
// are textual so existing content, comments included, is preserved
// byte-for-byte.
type LakefileAdapter struct{}

func NewLakefileAdapter() LakefileAdapter {
	return LakefileAdapter{}
}

func (a LakefileAdapter) Path(root string) string {
	return filepath.Join(root, LakefileName)
}

func (a LakefileAdapter) Exists(root string) bool {
	_, err := os.Stat(a.Path(root))
	return err == nil
}

func (a LakefileAdapter) Load(root string) (types.Lakefile, error) {
	data, err := os.ReadFile(a.Path(root))
	if err != nil {
		if os.IsNotExist(err) {
			return types.Lakefile{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("lakefile.toml not found").
				WithCause(err)
		}
		return types.Lakefile{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read lakefile.toml").
			WithCause(err)
	}
	var lakefile types.Lakefile
	if err := toml.Unmarshal(data, &lakefile); err != nil {
		return types.Lakefile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse lakefile.toml").
			WithCause(err)
	}
	return lakefile, nil
}

func (a LakefileAdapter) WriteSkeleton(root string, name string) error {
	if err := os.WriteFile(a.Path(root), []byte(core.RenderSkeleton(name)), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write lakefile.toml skeleton").
			WithCause(err)
	}
	return nil
}

func (a LakefileAdapter) AppendBlock(root string, block string) error {
	path := a.Path(root)
	data, err := os.ReadFile(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read lakefile.toml").
			WithCause(err)
	}
	text := string(data)
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	text += "\n" + strings.TrimRight(block, "\n") + "\n"
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to update lakefile.toml").
			WithCause(err)
	}
	return nil
}

var _ ports.LakefilePort = LakefileAdapter{}
