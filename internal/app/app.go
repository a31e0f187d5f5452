// Package app implements the application layer for gzap.
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/gzap/internal/build"
	"go.trai.ch/gzap/internal/core/domain"
	"go.trai.ch/gzap/internal/core/ports"
)

// Zapper sequences the cleanup tiers. Every tier is independent: a failure
// in one is logged and never prevents later tiers. This is best-effort
// cleanup, not a transaction.
type Zapper struct {
	logger   ports.Logger
	runner   ports.CommandRunner
	remover  ports.Remover
	expander ports.PatternExpander
	scanner  ports.ArtifactScanner
	guard    ports.HomeGuard
}

// New creates a new Zapper.
func New(
	logger ports.Logger,
	runner ports.CommandRunner,
	remover ports.Remover,
	expander ports.PatternExpander,
	scanner ports.ArtifactScanner,
	guard ports.HomeGuard,
) *Zapper {
	return &Zapper{
		logger:   logger,
		runner:   runner,
		remover:  remover,
		expander: expander,
		scanner:  scanner,
		guard:    guard,
	}
}

// Zap runs the full cleanup sequence and returns the outcome summary.
// The sequence itself never fails: tier failures are logged and tallied.
func (z *Zapper) Zap(ctx context.Context, cfg domain.RunConfig) *domain.Summary {
	sum := &domain.Summary{}

	z.banner(cfg)

	z.stopDaemons(ctx, cfg, sum)
	z.cleanBuildCache(ctx, cfg, sum)
	z.purgeProject(cfg, sum)

	if z.pruneUserCaches(cfg, sum) && cfg.Aggressive {
		z.pruneAggressive(cfg, sum)
	}

	if cfg.IncludeKonan {
		z.purgeKonan(cfg, sum)
	}

	z.logger.Info(fmt.Sprintf(
		">> zap complete (removed=%d would-remove=%d missing=%d failed=%d)",
		sum.Removed, sum.WouldRemove, sum.SkippedMissing, sum.Failed,
	))

	return sum
}

func (z *Zapper) banner(cfg domain.RunConfig) {
	z.logger.Info("== gzap " + build.Version + " ==")
	z.logger.Info(" root: " + cfg.ProjectRoot)
	z.logger.Info(" gradlew: " + cfg.Gradlew)
	z.logger.Info(" GRADLE_USER_HOME: " + cfg.GradleUserHome)
	z.logger.Info(" XDG_CACHE_HOME: " + cfg.XDGCacheHome)
	z.logger.Info(fmt.Sprintf(
		" dry_run=%t aggressive=%t include_kotlin_native=%t verbose=%t",
		cfg.DryRun, cfg.Aggressive, cfg.IncludeKonan, cfg.Verbose,
	))
}

// stopDaemons is tier 1: stop any running Gradle daemons.
func (z *Zapper) stopDaemons(ctx context.Context, cfg domain.RunConfig, sum *domain.Summary) {
	gradle, err := z.runner.ResolveGradle(cfg.Gradlew)
	if err != nil {
		z.logger.Warn("gradle/gradlew not found to stop daemons; continuing")
		return
	}
	z.runCommand(ctx, cfg, sum, []string{gradle, "--stop"})
}

// cleanBuildCache is tier 2: best-effort clean of the shared build cache.
func (z *Zapper) cleanBuildCache(ctx context.Context, cfg domain.RunConfig, sum *domain.Summary) {
	gradle, err := z.runner.ResolveGradle(cfg.Gradlew)
	if err != nil {
		z.logger.Debug("gradle/gradlew not found to clean build cache; continuing")
		return
	}
	z.runCommand(ctx, cfg, sum, []string{gradle, "-q", "cleanBuildCache"})
}

// purgeProject is tier 3: remove project-local artifact directories.
func (z *Zapper) purgeProject(cfg domain.RunConfig, sum *domain.Summary) {
	z.logger.Info(">> Removing project-local .gradle/ and build/ directories")
	for _, dir := range z.scanner.FindArtifactDirs(cfg.ProjectRoot) {
		z.remove(cfg, sum, dir)
	}
}

// pruneUserCaches is tier 4: the safe subset of the user-level prune.
// It reports whether the safety guard admitted the Gradle user home; the
// aggressive tier is gated on the same check.
func (z *Zapper) pruneUserCaches(cfg domain.RunConfig, sum *domain.Summary) bool {
	if !z.guard.UnderHome(cfg.GradleUserHome, cfg.Home) {
		z.logger.Warn(fmt.Sprintf(
			"SAFETY: GRADLE_USER_HOME (%s) is not under HOME (%s); skipping user-level prune",
			cfg.GradleUserHome, cfg.Home,
		))
		return false
	}

	z.logger.Info(">> Pruning user-level Gradle caches (safe subset)")

	for _, sub := range domain.SafeCacheSubdirs() {
		z.remove(cfg, sum, filepath.Join(cfg.GradleUserHome, sub))
	}

	for _, path := range z.expander.Expand(cfg.GradleUserHome, domain.SafeCachePatterns()) {
		z.remove(cfg, sum, path)
	}

	// Kotlin compiler shards live inside every versioned caches subdirectory.
	for _, path := range z.expander.Expand(cfg.GradleUserHome, []string{domain.KotlinShardPattern()}) {
		z.remove(cfg, sum, path)
	}

	z.remove(cfg, sum, filepath.Join(cfg.XDGCacheHome, domain.XDGGradleDirName))

	return true
}

// pruneAggressive is tier 5: dependency caches and wrapper distributions.
func (z *Zapper) pruneAggressive(cfg domain.RunConfig, sum *domain.Summary) {
	z.logger.Info(">> AGGRESSIVE: removing dependency caches and wrapper dists")
	for _, path := range z.expander.Expand(cfg.GradleUserHome, domain.AggressiveCachePatterns()) {
		z.remove(cfg, sum, path)
	}
}

// purgeKonan is tier 6: the optional Kotlin/Native toolchain purge. The
// guard is re-evaluated against the fixed ~/.konan location.
func (z *Zapper) purgeKonan(cfg domain.RunConfig, sum *domain.Summary) {
	konan := filepath.Join(cfg.Home, domain.KonanDirName)
	if !z.guard.UnderHome(konan, cfg.Home) {
		z.logger.Warn("SAFETY: refusing to remove " + konan + " outside HOME")
		return
	}

	z.logger.Info(">> Removing ~/.konan (Kotlin/Native)")
	z.remove(cfg, sum, konan)
}

// remove invokes the deletion primitive for one target and reports the outcome.
func (z *Zapper) remove(cfg domain.RunConfig, sum *domain.Summary, path string) {
	removal := z.remover.Remove(path, cfg.DryRun)
	sum.Record(removal)

	switch removal.Outcome {
	case domain.OutcomeWouldRemove:
		z.logger.Info("DRY-RUN: rm -rf " + path)
	case domain.OutcomeRemoved:
		z.logger.Debug("removed: " + path)
	case domain.OutcomeFailed:
		z.logger.Warn("failed to remove " + path + ": " + removal.Cause.Error())
	case domain.OutcomeSkippedMissing:
		// Nothing to report; a missing target is not an error.
	}
}

// runCommand invokes one external gradle command and reports the outcome.
func (z *Zapper) runCommand(ctx context.Context, cfg domain.RunConfig, sum *domain.Summary, argv []string) {
	result := z.runner.Run(ctx, argv, cfg.ProjectRoot, cfg.DryRun)

	switch {
	case result.NotRun && cfg.DryRun:
		z.logger.Info("DRY-RUN: would run: " + result.String())
	case result.Cause != nil:
		sum.CommandsFailed++
		z.logger.Warn("command failed: " + result.String() + ": " + result.Cause.Error())
	case result.Failed():
		sum.CommandsFailed++
		z.logger.Warn(fmt.Sprintf("command exited %d: %s", result.ExitCode, result.String()))
	default:
		z.logger.Debug("ran: " + result.String())
	}
}
