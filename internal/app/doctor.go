package app

import (
	"context"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog/log"

	"lakekit/internal/core"
)

// minLeanVersion is the oldest toolchain release lakekit is known to work
// with.
var minLeanVersion = semver.MustParse("4.0.0")

// DoctorReport summarizes the host toolchain environment.
type DoctorReport struct {
	LeanPath      string `yaml:"lean_path"`
	LakePath      string `yaml:"lake_path"`
	LeanVersion   string `yaml:"lean_version"`
	LakeVersion   string `yaml:"lake_version"`
	LeanSupported bool   `yaml:"lean_supported"`
	SupportsAdd   bool   `yaml:"supports_add"`
}

// Doctor verifies the environment: both binaries present, versions probed,
// and the lean release checked against the minimum supported version. It is
// idempotent and mutates nothing.
func (s Service) Doctor(ctx context.Context) (DoctorReport, error) {
	report := DoctorReport{}

	leanPath, err := s.Env.LookPath("lean")
	if err != nil {
		return report, err
	}
	report.LeanPath = leanPath

	lakePath, err := s.Env.LookPath("lake")
	if err != nil {
		return report, err
	}
	report.LakePath = lakePath

	versions, err := s.Versions(ctx)
	if err != nil {
		return report, err
	}
	report.LeanVersion = versions["lean"]
	report.LakeVersion = versions["lake"]

	if version, err := core.ParseToolchainVersion(report.LeanVersion); err != nil {
		log.Warn().Str("output", report.LeanVersion).Msg("could not parse lean version")
	} else {
		report.LeanSupported = !version.LessThan(minLeanVersion)
	}

	report.SupportsAdd = s.Tool.SupportsAdd(ctx)
	return report, nil
}

// Versions returns the detected lean and lake version strings.
func (s Service) Versions(ctx context.Context) (map[string]string, error) {
	versions := make(map[string]string, 2)
	for _, tool := range []string{"lean", "lake"} {
		version, err := s.Env.Version(ctx, tool)
		if err != nil {
			return nil, err
		}
		versions[tool] = version
	}
	return versions, nil
}
