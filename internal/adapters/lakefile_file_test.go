package adapters

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lakekit/internal/core"
	"lakekit/internal/types"
)

const sampleLakefile = `name = "demo"
version = "0.1.0"

[dependencies.mathlib]
git = "https://github.com/leanprover-community/mathlib.git"
branch = "stable"

[[require]]
name = "aesop"
scope = "leanprover-community"
rev = "v1.0.0"
`

func TestLakefileAdapterLoadBothShapes(t *testing.T) {
	root := t.TempDir()
	adapter := NewLakefileAdapter()
	require.NoError(t, os.WriteFile(adapter.Path(root), []byte(sampleLakefile), 0644))

	lakefile, err := adapter.Load(root)
	require.NoError(t, err)
	assert.Equal(t, "demo", lakefile.Name)

	require.Contains(t, lakefile.Dependencies, "mathlib")
	assert.Equal(t, "https://github.com/leanprover-community/mathlib.git", lakefile.Dependencies["mathlib"].Git)
	assert.Equal(t, "stable", lakefile.Dependencies["mathlib"].Pin())

	require.Len(t, lakefile.Require, 1)
	assert.Equal(t, "aesop", lakefile.Require[0].Name)
	assert.Equal(t, "leanprover-community", lakefile.Require[0].Scope)
	assert.Equal(t, "v1.0.0", lakefile.Require[0].Rev)
}

func TestLakefileAdapterLoadMalformed(t *testing.T) {
	root := t.TempDir()
	adapter := NewLakefileAdapter()
	require.NoError(t, os.WriteFile(adapter.Path(root), []byte("name = [unclosed"), 0644))

	_, err := adapter.Load(root)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestLakefileAdapterLoadAbsent(t *testing.T) {
	adapter := NewLakefileAdapter()
	_, err := adapter.Load(t.TempDir())
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestLakefileAdapterWriteSkeleton(t *testing.T) {
	root := t.TempDir()
	adapter := NewLakefileAdapter()
	require.NoError(t, adapter.WriteSkeleton(root, "demo"))

	lakefile, err := adapter.Load(root)
	require.NoError(t, err)
	assert.Equal(t, "demo", lakefile.Name)
	assert.Equal(t, "0.1.0", lakefile.Version)
}

func TestLakefileAdapterAppendPreservesContent(t *testing.T) {
	root := t.TempDir()
	adapter := NewLakefileAdapter()
	// Deliberately no trailing newline.
	original := "# hand-written comment\nname = \"demo\""
	require.NoError(t, os.WriteFile(adapter.Path(root), []byte(original), 0644))

	block := core.RenderRequireBlock(types.Dependency{Scope: "org", Name: "pkg", Version: "v1"})
	require.NoError(t, adapter.AppendBlock(root, block))

	data, err := os.ReadFile(adapter.Path(root))
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, original+"\n"))
	assert.Contains(t, text, "[[require]]")
	assert.True(t, strings.HasSuffix(text, "\n"))

	// The result must still parse, with the appended entry visible.
	lakefile, err := adapter.Load(root)
	require.NoError(t, err)
	require.Len(t, lakefile.Require, 1)
	assert.Equal(t, "pkg", lakefile.Require[0].Name)
}

func TestLakefileAdapterExists(t *testing.T) {
	root := t.TempDir()
	adapter := NewLakefileAdapter()
	assert.False(t, adapter.Exists(root))
	require.NoError(t, os.WriteFile(filepath.Join(root, LakefileName), []byte("name = \"x\"\n"), 0644))
	assert.True(t, adapter.Exists(root))
}
