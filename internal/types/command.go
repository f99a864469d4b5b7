package types

import (
	"fmt"
	"strings"
)

// CommandResult records one external toolchain invocation. It is kept even
// for failed commands so callers can surface the full trail in errors.
type CommandResult struct {
	Args     []string
	Dir      string
	ExitCode int
	Stdout   string
	Stderr   string
	TimedOut bool
}

// Ok reports whether the command completed with exit code zero.
func (r CommandResult) Ok() bool {
	return r.ExitCode == 0 && !r.TimedOut
}

// Trace formats the invocation and its outcome for diagnostic trails.
func (r CommandResult) Trace() string {
	status := fmt.Sprintf("exit %d", r.ExitCode)
	if r.TimedOut {
		status = "timed out"
	}
	return fmt.Sprintf("%s (%s)\nstdout:\n%s\n\nstderr:\n%s",
		strings.Join(r.Args, " "), status, r.Stdout, r.Stderr)
}

// Summary formats the command line, exit code, and captured output for
// inclusion in error messages.
func (r CommandResult) Summary() string {
	status := fmt.Sprintf("exit %d", r.ExitCode)
	if r.TimedOut {
		status = "timed out"
	}
	return fmt.Sprintf("command %s failed (%s)\nstdout:\n%s\n\nstderr:\n%s",
		strings.Join(r.Args, " "), status, r.Stdout, r.Stderr)
}
