package ports

import (
	"context"
	"time"

	"lakekit/internal/types"
)

// ToolchainPort invokes the external build toolchain. Every method is a
// blocking subprocess call; the returned CommandResult carries the full
// invocation trace even when the command exited non-zero. The error return
// is reserved for failures to run the command at all (missing binary,
// unreadable working directory).
type ToolchainPort interface {
	// NewProject runs the full-scaffold command in the parent directory;
	// the toolchain creates the leaf directory itself.
	NewProject(ctx context.Context, parentDir string, name string) (types.CommandResult, error)

	// InitProject runs the lightweight init command inside dir.
	InitProject(ctx context.Context, dir string) (types.CommandResult, error)

	// Update runs the dependency resolution/update command.
	Update(ctx context.Context, dir string, reconfigure bool) (types.CommandResult, error)

	// CacheGet runs the build-cache prefetch command.
	CacheGet(ctx context.Context, dir string) (types.CommandResult, error)

	// RunEnv executes a source file through the toolchain environment,
	// e.g. `lake env lean <file>`.
	RunEnv(ctx context.Context, dir string, interpreter string, file string, timeout time.Duration) (types.CommandResult, error)

	// SupportsAdd probes whether the toolchain recognizes an `add` command.
	SupportsAdd(ctx context.Context) bool
}
