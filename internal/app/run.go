package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"lakekit/internal/core"
	"lakekit/internal/types"
)

// SnippetDir is the subdirectory of the project root holding generated
// snippet files.
const SnippetDir = ".lakekit"

const defaultRunTimeout = 30 * time.Second

type RunRequest struct {
	Imports     []string
	Code        string
	Interpreter string
	Timeout     time.Duration
}

// RunSnippet writes the snippet to a content-addressed file under the
// project and executes it through the toolchain environment.
func (s Service) RunSnippet(ctx context.Context, project *Project, req RunRequest) (types.RunResult, error) {
	dir := filepath.Join(project.Path, SnippetDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return types.RunResult{}, core.ExecutionError("failed to create snippet directory", err)
	}

	file := filepath.Join(dir, core.SnippetFileName(req.Imports, req.Code))
	if err := os.WriteFile(file, []byte(core.RenderSnippet(req.Imports, req.Code)), 0644); err != nil {
		return types.RunResult{}, core.ExecutionError("failed to write snippet file", err)
	}

	interpreter := req.Interpreter
	if interpreter == "" {
		interpreter = "lean"
	}
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = defaultRunTimeout
	}

	result, err := s.Tool.RunEnv(ctx, project.Path, interpreter, file, timeout)
	if err != nil {
		return types.RunResult{}, core.ExecutionError("failed to execute snippet", err)
	}
	if result.TimedOut {
		return types.RunResult{}, core.ExecutionTimeoutError(
			fmt.Sprintf("snippet execution timed out after %s", timeout))
	}
	if !result.Ok() {
		return types.RunResult{}, core.ExecutionError(result.Summary(), nil)
	}

	return types.RunResult{
		File:     file,
		Stdout:   result.Stdout,
		Stderr:   result.Stderr,
		ExitCode: result.ExitCode,
	}, nil
}
