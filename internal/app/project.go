package app

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"lakekit/internal/core"
	"lakekit/internal/shared"
	"lakekit/internal/types"
)

// markerLakefileLean is the legacy declarative-config marker; the TOML
// marker is owned by the lakefile adapter.
const markerLakefileLean = "lakefile.lean"

// Project is a managed directory. Path is the resolved identity of the
// project; Dependencies is the duplicate-free set of declarations known to
// apply to it.
type Project struct {
	Path         string
	Name         string
	Dependencies []types.Dependency
}

type OpenRequest struct {
	Path string
	Name string
}

// OpenProject reconciles the directory state and hydrates the dependency
// view. Constructing over an existing valid project is a pure
// re-hydration; over an absent path it scaffolds via the toolchain; over
// an empty directory it runs the lightweight init; over unrelated content
// it fails rather than initialize in place.
func (s Service) OpenProject(ctx context.Context, req OpenRequest) (*Project, error) {
	if _, err := s.Env.LookPath("lean"); err != nil {
		return nil, err
	}
	if _, err := s.Env.LookPath("lake"); err != nil {
		return nil, err
	}

	path, err := resolvePath(req.Path)
	if err != nil {
		return nil, err
	}
	name := req.Name
	if name == "" {
		name = filepath.Base(path)
	}

	state, err := s.classify(path)
	if err != nil {
		return nil, err
	}

	var trail []types.CommandResult
	switch state {
	case types.ProjectStateValid:
		log.Debug().Str("path", path).Msg("reusing existing project")
	case types.ProjectStateAbsent:
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, core.ProjectInitError("failed to create parent directories", err)
		}
		// The scaffold command creates the leaf directory itself, so it
		// runs in the parent.
		result, err := s.Tool.NewProject(ctx, filepath.Dir(path), name)
		trail = append(trail, result)
		if err != nil {
			return nil, err
		}
		if !result.Ok() {
			return nil, core.ProjectInitError(result.Summary(), nil)
		}
	case types.ProjectStateEmpty:
		// `lake new` refuses an existing directory, so init in place.
		result, err := s.Tool.InitProject(ctx, path)
		trail = append(trail, result)
		if err != nil {
			return nil, err
		}
		if !result.Ok() {
			return nil, core.ProjectInitError(result.Summary(), nil)
		}
	case types.ProjectStateInvalid:
		return nil, core.ProjectInitError(
			fmt.Sprintf("directory %s exists but is not a managed project and not empty", path), nil)
	}

	if state != types.ProjectStateValid && !s.hasMarker(path) {
		return nil, core.ProjectInitError(initFailureDetail(path, trail), nil)
	}

	deps, err := s.loadDependencies(path, name)
	if err != nil {
		return nil, err
	}
	return &Project{Path: path, Name: name, Dependencies: deps}, nil
}

// CloneProject copies the project tree to destination and opens a fresh
// project over it. An existing destination is refused before anything is
// touched.
func (s Service) CloneProject(ctx context.Context, project *Project, destination string, name string) (*Project, error) {
	dest, err := resolvePath(destination)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(dest); err == nil {
		return nil, core.ProjectInitError(
			fmt.Sprintf("destination %s already exists, cannot clone", dest), nil)
	}
	if err := copyTree(project.Path, dest); err != nil {
		return nil, core.ProjectInitError(
			fmt.Sprintf("failed to clone project to %s", dest), err)
	}
	if name == "" {
		name = filepath.Base(dest)
	}
	return s.OpenProject(ctx, OpenRequest{Path: dest, Name: name})
}

// RemoveProject deletes the project directory recursively, best-effort.
func (s Service) RemoveProject(project *Project) {
	if err := os.RemoveAll(project.Path); err != nil {
		log.Debug().Err(err).Str("path", project.Path).Msg("failed to remove project directory")
	}
}

func (s Service) classify(path string) (types.ProjectState, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return types.ProjectStateAbsent, nil
	}
	if err != nil {
		return "", core.ProjectInitError("failed to inspect project directory", err)
	}
	if !info.IsDir() {
		return types.ProjectStateInvalid, nil
	}
	if s.hasMarker(path) {
		return types.ProjectStateValid, nil
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return "", core.ProjectInitError("failed to list project directory", err)
	}
	if len(entries) == 0 {
		return types.ProjectStateEmpty, nil
	}
	return types.ProjectStateInvalid, nil
}

func (s Service) hasMarker(path string) bool {
	if s.Lakefile.Exists(path) {
		return true
	}
	_, err := os.Stat(filepath.Join(path, markerLakefileLean))
	return err == nil
}

func (s Service) loadDependencies(path string, projectName string) ([]types.Dependency, error) {
	var deps []types.Dependency

	manifest, found, err := s.Lock.Load(path)
	if err != nil {
		return nil, core.ProjectInitError("failed to load lake-manifest.json", err)
	}
	if found {
		deps = core.MergeDeclarations(deps, core.DeclarationsFromLockManifest(manifest, projectName)...)
	}

	if s.Lakefile.Exists(path) {
		lakefile, err := s.Lakefile.Load(path)
		if err != nil {
			return nil, core.ProjectInitError("failed to load lakefile.toml", err)
		}
		deps = core.MergeDeclarations(deps, core.DeclarationsFromLakefile(lakefile)...)
	}

	core.SortDeclarations(deps)
	return deps, nil
}

func initFailureDetail(path string, trail []types.CommandResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "expected project files not found in %s, initialization may have failed", path)
	if entries, err := os.ReadDir(path); err == nil {
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			names = append(names, entry.Name())
		}
		fmt.Fprintf(&b, "\ndirectory contents: [%s]", strings.Join(names, ", "))
	}
	for _, result := range trail {
		b.WriteString("\n")
		b.WriteString(result.Trace())
	}
	return b.String()
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", core.ProjectInitError("project path is empty", nil)
	}
	abs, err := filepath.Abs(shared.ExpandUser(path))
	if err != nil {
		return "", core.ProjectInitError("failed to resolve project path", err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

func copyTree(src string, dest string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, info.Mode().Perm())
	})
}
