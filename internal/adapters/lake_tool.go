package adapters

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"lakekit/internal/ports"
	"lakekit/internal/types"
)

const defaultCommandTimeout = 120 * time.Second

// LakeToolAdapter invokes the lake binary as a blocking subprocess with a
// fixed command vocabulary. Non-zero exits are reported through the
// CommandResult, not the error return; errors mean the command could not
// be run at all.
type LakeToolAdapter struct {
	Binary  string
	Timeout time.Duration
}

func NewLakeToolAdapter() LakeToolAdapter {
	return LakeToolAdapter{Binary: "lake", Timeout: defaultCommandTimeout}
}

func (a LakeToolAdapter) NewProject(ctx context.Context, parentDir string, name string) (types.CommandResult, error) {
	return a.run(ctx, parentDir, a.Timeout, "new", name)
}

func (a LakeToolAdapter) InitProject(ctx context.Context, dir string) (types.CommandResult, error) {
	return a.run(ctx, dir, a.Timeout, "init")
}

func (a LakeToolAdapter) Update(ctx context.Context, dir string, reconfigure bool) (types.CommandResult, error) {
	if reconfigure {
		return a.run(ctx, dir, a.Timeout, "update", "--reconfigure")
	}
	return a.run(ctx, dir, a.Timeout, "update")
}

func (a LakeToolAdapter) CacheGet(ctx context.Context, dir string) (types.CommandResult, error) {
	return a.run(ctx, dir, a.Timeout, "exe", "cache", "get")
}

func (a LakeToolAdapter) RunEnv(ctx context.Context, dir string, interpreter string, file string, timeout time.Duration) (types.CommandResult, error) {
	if timeout <= 0 {
		timeout = a.Timeout
	}
	return a.run(ctx, dir, timeout, "env", interpreter, file)
}

func (a LakeToolAdapter) SupportsAdd(ctx context.Context) bool {
	result, err := a.run(ctx, "", 10*time.Second, "add", "--help")
	return err == nil && result.Ok()
}

func (a LakeToolAdapter) run(ctx context.Context, dir string, timeout time.Duration, args ...string) (types.CommandResult, error) {
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, a.Binary, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debug().Str("binary", a.Binary).Strs("args", args).Str("dir", dir).Msg("running toolchain command")
	runErr := cmd.Run()

	result := types.CommandResult{
		Args:     append([]string{a.Binary}, args...),
		Dir:      dir,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		TimedOut: errors.Is(runCtx.Err(), context.DeadlineExceeded),
	}

	if runErr == nil {
		return result, nil
	}
	var exitErr *exec.ExitError
	switch {
	case errors.As(runErr, &exitErr):
		result.ExitCode = exitErr.ProcessState.ExitCode()
		if result.ExitCode == 0 {
			result.ExitCode = -1
		}
		return result, nil
	case result.TimedOut:
		result.ExitCode = -1
		return result, nil
	}
	return result, errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("failed to run toolchain command").
		WithCause(runErr)
}

var _ ports.ToolchainPort = LakeToolAdapter{}
