package adapters

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"lakekit/internal/ports"
	"lakekit/internal/shared"
)

const probeTimeout = 10 * time.Second

// EnvProbeAdapter answers binary-presence and version questions about the
// host toolchain. All probes are idempotent and side-effect free.
type EnvProbeAdapter struct{}

func NewEnvProbeAdapter() EnvProbeAdapter {
	return EnvProbeAdapter{}
}

func (a EnvProbeAdapter) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("%s binary not found on PATH, install it or activate your toolchain", name)).
			WithCause(err)
	}
	return path, nil
}

// Version runs `<name> --version` and returns the trimmed stdout, falling
// back to stderr for tools that report there.
func (a EnvProbeAdapter) Version(ctx context.Context, name string) (string, error) {
	if _, err := a.LookPath(name); err != nil {
		return "", err
	}
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	cmd := exec.CommandContext(probeCtx, name, "--version")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to probe %s version", name)).
			WithCause(shared.CommandError(stderr.Bytes(), err))
	}
	version := strings.TrimSpace(stdout.String())
	if version == "" {
		version = strings.TrimSpace(stderr.String())
	}
	return version, nil
}

var _ ports.EnvPort = EnvProbeAdapter{}
