// Package core holds the pure logic of lakekit: the error taxonomy,
// identifier derivation, dependency-set merging, and deterministic snippet
// naming. Nothing in this package touches the filesystem or spawns
// processes.
package core

import (
	"github.com/ZanzyTHEbar/errbuilder-go"
)

// The error taxonomy is keyed on errbuilder codes:
//
//	project reconciliation / clone / manifest-load -> CodeFailedPrecondition
//	dependency install                             -> CodeAborted
//	snippet execution                              -> CodeInternal, or
//	                                                  CodeDeadlineExceeded on timeout
//	toolchain binary missing                       -> CodeNotFound

// ProjectInitError builds a project reconciliation failure.
func ProjectInitError(msg string, cause error) error {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(msg)
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	return builder
}

// DependencyError builds a dependency installation failure.
func DependencyError(msg string, cause error) error {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeAborted).
		WithMsg(msg)
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	return builder
}

// ExecutionError builds a snippet execution failure.
func ExecutionError(msg string, cause error) error {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(msg)
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	return builder
}

// ExecutionTimeoutError builds a snippet timeout failure.
func ExecutionTimeoutError(msg string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeDeadlineExceeded).
		WithMsg(msg)
}

// ToolNotFoundError builds a missing-binary failure.
func ToolNotFoundError(msg string, cause error) error {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(msg)
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	return builder
}

func IsProjectInitError(err error) bool {
	return errbuilder.CodeOf(err) == errbuilder.CodeFailedPrecondition
}

func IsDependencyError(err error) bool {
	return errbuilder.CodeOf(err) == errbuilder.CodeAborted
}

func IsExecutionError(err error) bool {
	code := errbuilder.CodeOf(err)
	return code == errbuilder.CodeInternal || code == errbuilder.CodeDeadlineExceeded
}

func IsToolNotFoundError(err error) bool {
	return errbuilder.CodeOf(err) == errbuilder.CodeNotFound
}
