package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lakekit/internal/adapters"
	"lakekit/internal/core"
	"lakekit/internal/types"
)

func openTestProject(t *testing.T, service Service) *Project {
	t.Helper()
	project, err := service.OpenProject(t.Context(), OpenRequest{Path: filepath.Join(t.TempDir(), "proj")})
	require.NoError(t, err)
	return project
}

func TestInstallDependencyAppendsRequireBlock(t *testing.T) {
	tool := &fakeTool{}
	service := newTestService(tool)
	project := openTestProject(t, service)

	dep := types.Dependency{Scope: "leanprover-community", Name: "mathlib", Version: "v4.9.0"}
	require.NoError(t, service.InstallDependency(t.Context(), project, dep))

	data, err := os.ReadFile(filepath.Join(project.Path, adapters.LakefileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "[[require]]")
	assert.Contains(t, string(data), `scope = "leanprover-community"`)
	assert.Contains(t, string(data), `rev = "v4.9.0"`)

	assert.Equal(t, []bool{true}, tool.updateFlags)
	assert.Equal(t, 0, tool.cacheCalls)
	assert.Equal(t, []types.Dependency{dep}, project.Dependencies)
}

func TestInstallDependencyIsIdempotent(t *testing.T) {
	tool := &fakeTool{}
	service := newTestService(tool)
	project := openTestProject(t, service)

	dep := types.Dependency{Scope: "org", Name: "pkg", Version: "v1"}
	require.NoError(t, service.InstallDependency(t.Context(), project, dep))
	require.NoError(t, service.InstallDependency(t.Context(), project, dep))

	data, err := os.ReadFile(filepath.Join(project.Path, adapters.LakefileName))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "[[require]]"))
	// The second call short-circuits before touching the toolchain.
	assert.Len(t, tool.updateFlags, 1)
	assert.Len(t, project.Dependencies, 1)
}

func TestInstallDependencyUnpinnedMatchesPinned(t *testing.T) {
	tool := &fakeTool{}
	service := newTestService(tool)
	project := openTestProject(t, service)

	require.NoError(t, service.InstallDependency(t.Context(), project,
		types.Dependency{Scope: "org", Name: "pkg", Version: "v1"}))
	require.NoError(t, service.InstallDependency(t.Context(), project,
		types.Dependency{Scope: "org", Name: "pkg"}))

	data, err := os.ReadFile(filepath.Join(project.Path, adapters.LakefileName))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "[[require]]"))
	assert.Contains(t, string(data), `rev = "v1"`)
}

func TestInstallDependencyRetriesWithoutReconfigure(t *testing.T) {
	tool := &fakeTool{rejectReconfigure: true}
	service := newTestService(tool)
	project := openTestProject(t, service)

	require.NoError(t, service.InstallDependency(t.Context(), project,
		types.Dependency{Scope: "org", Name: "pkg"}))

	assert.Equal(t, []bool{true, false}, tool.updateFlags)
}

func TestInstallDependencyUpdateFailure(t *testing.T) {
	tool := &fakeTool{failUpdate: true}
	service := newTestService(tool)
	project := openTestProject(t, service)

	err := service.InstallDependency(t.Context(), project,
		types.Dependency{Scope: "org", Name: "pkg"})
	require.Error(t, err)
	assert.True(t, core.IsDependencyError(err))
	assert.Empty(t, project.Dependencies)
}

func TestInstallDependencyCacheFailureIsIgnored(t *testing.T) {
	tool := &fakeTool{failCache: true}
	service := newTestService(tool)
	project := openTestProject(t, service)

	require.NoError(t, service.InstallDependency(t.Context(), project,
		types.Dependency{Scope: "org", Name: "pkg", Cache: true}))
	assert.Equal(t, 1, tool.cacheCalls)
	assert.Len(t, project.Dependencies, 1)
}

func TestInstallDependencyCreatesSkeleton(t *testing.T) {
	// A project carrying only the legacy marker has no lakefile.toml yet;
	// installing must create one before appending.
	path := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(path, "lakefile.lean"), []byte("import Lake\n"), 0644))

	tool := &fakeTool{}
	service := newTestService(tool)
	project, err := service.OpenProject(t.Context(), OpenRequest{Path: path, Name: "legacy"})
	require.NoError(t, err)

	require.NoError(t, service.InstallDependency(t.Context(), project,
		types.Dependency{Scope: "org", Name: "pkg"}))

	lakefile, err := service.Lakefile.Load(project.Path)
	require.NoError(t, err)
	assert.Equal(t, "legacy", lakefile.Name)
	require.Len(t, lakefile.Require, 1)
	assert.Equal(t, "pkg", lakefile.Require[0].Name)
}

func TestInstallDependencyRejectsInvalidDeclaration(t *testing.T) {
	tool := &fakeTool{}
	service := newTestService(tool)
	project := openTestProject(t, service)

	err := service.InstallDependency(t.Context(), project, types.Dependency{Scope: "org"})
	require.Error(t, err)
	assert.Len(t, tool.updateFlags, 0)
}

func TestInstallDependencyMalformedLakefile(t *testing.T) {
	tool := &fakeTool{}
	service := newTestService(tool)
	project := openTestProject(t, service)
	require.NoError(t, os.WriteFile(filepath.Join(project.Path, adapters.LakefileName), []byte("name = [unclosed"), 0644))

	err := service.InstallDependency(t.Context(), project,
		types.Dependency{Scope: "org", Name: "pkg"})
	require.Error(t, err)
	assert.True(t, core.IsDependencyError(err))
}
