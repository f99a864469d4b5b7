// Package app orchestrates the ports: project state reconciliation,
// dependency installation and hydration, snippet execution, and
// environment checks.
package app

import (
	"lakekit/internal/adapters"
	"lakekit/internal/ports"
)

type Service struct {
	Lakefile ports.LakefilePort
	Lock     ports.LockManifestPort
	Tool     ports.ToolchainPort
	Env      ports.EnvPort
}

func NewService() Service {
	return Service{
		Lakefile: adapters.NewLakefileAdapter(),
		Lock:     adapters.NewLockManifestAdapter(),
		Tool:     adapters.NewLakeToolAdapter(),
		Env:      adapters.NewEnvProbeAdapter(),
	}
}
