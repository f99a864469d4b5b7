package core

import (
	"regexp"

	"github.com/Masterminds/semver/v3"
	"github.com/ZanzyTHEbar/errbuilder-go"
)

var versionPattern = regexp.MustCompile(`\d+\.\d+\.\d+[0-9A-Za-z.+-]*`)

// ParseToolchainVersion extracts a semantic version from a toolchain's
// --version output, e.g. "Lean (version 4.9.0, ...)" -> 4.9.0.
func ParseToolchainVersion(output string) (*semver.Version, error) {
	match := versionPattern.FindString(output)
	if match == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no version number in toolchain output")
	}
	version, err := semver.NewVersion(match)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unparseable toolchain version").
			WithCause(err)
	}
	return version, nil
}
