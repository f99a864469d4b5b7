package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"lakekit/internal/adapters"
	"lakekit/internal/core"
	"lakekit/internal/ports"
	"lakekit/internal/types"
)

// fakeTool is an in-process ToolchainPort. Scaffold and init write the
// marker file the way the real toolchain would, unless markerless is set.
type fakeTool struct {
	markerless        bool
	rejectReconfigure bool
	failUpdate        bool
	failCache         bool
	envResult         types.CommandResult
	envErr            error

	newCalls    int
	initCalls   int
	cacheCalls  int
	envCalls    int
	updateFlags []bool
}

func (f *fakeTool) NewProject(_ context.Context, parentDir string, name string) (types.CommandResult, error) {
	f.newCalls++
	result := types.CommandResult{Args: []string{"lake", "new", name}, Dir: parentDir}
	dir := filepath.Join(parentDir, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return result, err
	}
	if f.markerless {
		return result, nil
	}
	return result, writeMarker(dir, name)
}

func (f *fakeTool) InitProject(_ context.Context, dir string) (types.CommandResult, error) {
	f.initCalls++
	result := types.CommandResult{Args: []string{"lake", "init"}, Dir: dir}
	if f.markerless {
		return result, nil
	}
	return result, writeMarker(dir, filepath.Base(dir))
}

func (f *fakeTool) Update(_ context.Context, dir string, reconfigure bool) (types.CommandResult, error) {
	f.updateFlags = append(f.updateFlags, reconfigure)
	args := []string{"lake", "update"}
	if reconfigure {
		args = append(args, "--reconfigure")
	}
	if reconfigure && f.rejectReconfigure {
		return types.CommandResult{Args: args, Dir: dir, ExitCode: 1, Stderr: "error: unknown flag '--reconfigure'"}, nil
	}
	if f.failUpdate {
		return types.CommandResult{Args: args, Dir: dir, ExitCode: 7, Stderr: "error: dependency resolution failed"}, nil
	}
	return types.CommandResult{Args: args, Dir: dir}, nil
}

func (f *fakeTool) CacheGet(_ context.Context, dir string) (types.CommandResult, error) {
	f.cacheCalls++
	args := []string{"lake", "exe", "cache", "get"}
	if f.failCache {
		return types.CommandResult{Args: args, Dir: dir, ExitCode: 1, Stderr: "cache unavailable"}, nil
	}
	return types.CommandResult{Args: args, Dir: dir}, nil
}

func (f *fakeTool) RunEnv(_ context.Context, dir string, interpreter string, file string, _ time.Duration) (types.CommandResult, error) {
	f.envCalls++
	if f.envErr != nil {
		return types.CommandResult{}, f.envErr
	}
	result := f.envResult
	if result.Args == nil {
		result.Args = []string{"lake", "env", interpreter, file}
		result.Dir = dir
	}
	return result, nil
}

func (f *fakeTool) SupportsAdd(context.Context) bool { return true }

func writeMarker(dir string, name string) error {
	content := fmt.Sprintf("name = %q\nversion = \"0.1.0\"\n", name)
	return os.WriteFile(filepath.Join(dir, adapters.LakefileName), []byte(content), 0644)
}

// fakeEnv reports every binary as present unless listed in missing.
type fakeEnv struct {
	missing map[string]bool
}

func (f fakeEnv) LookPath(name string) (string, error) {
	if f.missing[name] {
		return "", core.ToolNotFoundError(name+" binary not found on PATH", nil)
	}
	return "/usr/bin/" + name, nil
}

func (f fakeEnv) Version(_ context.Context, name string) (string, error) {
	if f.missing[name] {
		return "", core.ToolNotFoundError(name+" binary not found on PATH", nil)
	}
	if name == "lean" {
		return "Lean (version 4.9.0, x86_64-unknown-linux-gnu, commit abc, Release)", nil
	}
	return "Lake version 5.0.0 (Lean version 4.9.0)", nil
}

func newTestService(tool *fakeTool) Service {
	return Service{
		Lakefile: adapters.NewLakefileAdapter(),
		Lock:     adapters.NewLockManifestAdapter(),
		Tool:     tool,
		Env:      fakeEnv{},
	}
}

var (
	_ ports.ToolchainPort = (*fakeTool)(nil)
	_ ports.EnvPort       = fakeEnv{}
)
