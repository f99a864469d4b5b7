package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"lakekit/internal/core"
	"lakekit/internal/policies"
	"lakekit/internal/types"
)

// InstallDependency merges the declaration into the project's declarative
// config and delegates resolution to the toolchain. Installing an already
// declared package is a no-op.
func (s Service) InstallDependency(ctx context.Context, project *Project, dep types.Dependency) error {
	if err := core.ValidateDeclaration(ctx, dep); err != nil {
		return err
	}

	if !s.Lakefile.Exists(project.Path) {
		if err := s.Lakefile.WriteSkeleton(project.Path, project.Name); err != nil {
			return core.DependencyError("failed to create lakefile.toml", err)
		}
	}

	lakefile, err := s.Lakefile.Load(project.Path)
	if err != nil {
		return core.DependencyError("failed to parse lakefile.toml", err)
	}
	declared := core.DeclarationsFromLakefile(lakefile)
	if policies.HasInstallMatch(declared, dep) {
		log.Debug().Str("dependency", dep.Identifier()).Msg("dependency already declared")
		return nil
	}

	if err := s.Lakefile.AppendBlock(project.Path, core.RenderRequireBlock(dep)); err != nil {
		return core.DependencyError("failed to append dependency entry", err)
	}

	result, err := s.Tool.Update(ctx, project.Path, true)
	if err != nil {
		return core.DependencyError("failed to run dependency update", err)
	}
	if !result.Ok() && core.LooksLikeFlagError(result) {
		// Older toolchains reject --reconfigure; retry once without it.
		result, err = s.Tool.Update(ctx, project.Path, false)
		if err != nil {
			return core.DependencyError("failed to run dependency update", err)
		}
	}
	if !result.Ok() {
		return core.DependencyError(result.Summary(), nil)
	}

	if dep.Cache {
		// Best-effort prefetch; a failure here is deliberately discarded.
		if result, err := s.Tool.CacheGet(ctx, project.Path); err != nil || !result.Ok() {
			log.Debug().Str("dependency", dep.Identifier()).Msg("cache prefetch failed, continuing")
		}
	}

	project.Dependencies = core.MergeDeclarations(project.Dependencies, dep)
	core.SortDeclarations(project.Dependencies)
	return nil
}
