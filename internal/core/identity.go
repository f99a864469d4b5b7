package core

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"lakekit/internal/types"
)

// FallbackScope is used when a package's source URL carries too few path
// segments to derive an organization.
const FallbackScope = "unknown"

// DeriveScopeName extracts scope and name from a package source URL: the
// second-to-last non-empty path segment is the scope, the last segment
// (with a trailing ".git" stripped) is the name. When the URL is absent or
// too short, the scope falls back to "unknown" and the name to
// fallbackName.
func DeriveScopeName(rawURL string, fallbackName string) (string, string) {
	if rawURL == "" {
		return FallbackScope, fallbackName
	}
	var path string
	if parsed, err := url.Parse(rawURL); err == nil {
		path = parsed.Path
	} else if colon := strings.LastIndex(rawURL, ":"); colon >= 0 {
		// scp-style remotes (git@host:org/repo.git) are not URLs; the
		// path starts after the colon.
		path = rawURL[colon+1:]
	} else {
		return FallbackScope, fallbackName
	}
	var segments []string
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			segments = append(segments, part)
		}
	}
	if len(segments) < 2 {
		return FallbackScope, fallbackName
	}
	scope := segments[len(segments)-2]
	name := strings.TrimSuffix(segments[len(segments)-1], ".git")
	return scope, name
}

// ParseIdentifier parses "scope/name" or "scope/name@version" into a
// declaration.
func ParseIdentifier(raw string) (types.Dependency, error) {
	spec := strings.TrimSpace(raw)
	var version string
	if at := strings.LastIndex(spec, "@"); at >= 0 {
		version = spec[at+1:]
		spec = spec[:at]
	}
	scope, name, found := strings.Cut(spec, "/")
	if !found || scope == "" || name == "" {
		return types.Dependency{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid package identifier %q, expected scope/name[@version]", raw))
	}
	return types.Dependency{Scope: scope, Name: name, Version: version}, nil
}

// ValidateDeclaration checks that an install request names a package.
func ValidateDeclaration(ctx context.Context, dep types.Dependency) error {
	if strings.TrimSpace(dep.Name) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("dependency name must not be empty")
	}
	if strings.TrimSpace(dep.Scope) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("dependency scope must not be empty")
	}
	assert.NotEmpty(ctx, dep.Identifier(), "declaration identifier must derive from scope and name")
	return nil
}
