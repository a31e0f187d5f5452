package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gzap/internal/adapters/fs"
	"go.trai.ch/gzap/internal/app"
	"go.trai.ch/gzap/internal/core/domain"
	"go.trai.ch/gzap/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// newFilesystemZapper wires the real filesystem adapters. Gradle is absent,
// so the daemon and build-cache tiers fall through to their warn paths.
func newFilesystemZapper(t *testing.T) *app.Zapper {
	t.Helper()
	ctrl := gomock.NewController(t)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().ResolveGradle(gomock.Any()).Return("", domain.ErrGradleNotFound).AnyTimes()

	return app.New(logger, runner, fs.NewRemover(), fs.NewExpander(), fs.NewScanner(), fs.NewHomeGuard())
}

// seedTree lays out a realistic project and user home under one temp root.
func seedTree(t *testing.T) domain.RunConfig {
	t.Helper()
	base := t.TempDir()

	home := filepath.Join(base, "home")
	proj := filepath.Join(base, "proj")

	for _, rel := range []string{
		"proj/build/libs",
		"proj/sub/.gradle/caches",
		"proj/.git/build",
		"proj/src/main/kotlin",
		"home/.gradle/daemon",
		"home/.gradle/caches/build-cache-1",
		"home/.gradle/caches/modules-2",
		"home/.gradle/caches/8.9/kotlin",
		"home/.gradle/caches/8.9/scripts",
		"home/.gradle/wrapper/dists",
		"home/.cache/gradle",
	} {
		require.NoError(t, os.MkdirAll(filepath.Join(base, rel), 0o750))
	}
	require.NoError(t, os.WriteFile(filepath.Join(proj, "src/main/kotlin/Main.kt"), []byte("fun main() {}\n"), 0o600))

	return domain.RunConfig{
		ProjectRoot:    proj,
		Home:           home,
		Gradlew:        filepath.Join(proj, "gradlew"),
		GradleUserHome: filepath.Join(home, ".gradle"),
		XDGCacheHome:   filepath.Join(home, ".cache"),
	}
}

func TestZap_Filesystem_SafeRun(t *testing.T) {
	t.Parallel()

	zapper := newFilesystemZapper(t)
	cfg := seedTree(t)

	sum := zapper.Zap(context.Background(), cfg)

	assert.True(t, sum.Mutated())
	assert.Zero(t, sum.Failed)

	assert.NoDirExists(t, filepath.Join(cfg.ProjectRoot, "build"))
	assert.NoDirExists(t, filepath.Join(cfg.ProjectRoot, "sub/.gradle"))
	assert.NoDirExists(t, filepath.Join(cfg.GradleUserHome, "daemon"))
	assert.NoDirExists(t, filepath.Join(cfg.GradleUserHome, "caches/build-cache-1"))
	assert.NoDirExists(t, filepath.Join(cfg.GradleUserHome, "caches/8.9/kotlin"))
	assert.NoDirExists(t, filepath.Join(cfg.XDGCacheHome, "gradle"))

	// Survivors: sources, version control, and the expensive caches.
	assert.FileExists(t, filepath.Join(cfg.ProjectRoot, "src/main/kotlin/Main.kt"))
	assert.DirExists(t, filepath.Join(cfg.ProjectRoot, ".git/build"))
	assert.DirExists(t, filepath.Join(cfg.GradleUserHome, "caches/modules-2"))
	assert.DirExists(t, filepath.Join(cfg.GradleUserHome, "caches/8.9/scripts"))
	assert.DirExists(t, filepath.Join(cfg.GradleUserHome, "wrapper/dists"))
}

func TestZap_Filesystem_AggressiveRun(t *testing.T) {
	t.Parallel()

	zapper := newFilesystemZapper(t)
	cfg := seedTree(t)
	cfg.Aggressive = true

	sum := zapper.Zap(context.Background(), cfg)

	assert.True(t, sum.Mutated())
	assert.NoDirExists(t, filepath.Join(cfg.GradleUserHome, "caches/modules-2"))
	assert.NoDirExists(t, filepath.Join(cfg.GradleUserHome, "wrapper/dists"))
}

func TestZap_Filesystem_DryRun(t *testing.T) {
	t.Parallel()

	zapper := newFilesystemZapper(t)
	cfg := seedTree(t)
	cfg.DryRun = true
	cfg.Aggressive = true

	sum := zapper.Zap(context.Background(), cfg)

	assert.False(t, sum.Mutated())
	assert.Positive(t, sum.WouldRemove)
	assert.Zero(t, sum.Removed)

	assert.DirExists(t, filepath.Join(cfg.ProjectRoot, "build"))
	assert.DirExists(t, filepath.Join(cfg.ProjectRoot, "sub/.gradle"))
	assert.DirExists(t, filepath.Join(cfg.GradleUserHome, "daemon"))
	assert.DirExists(t, filepath.Join(cfg.GradleUserHome, "caches/modules-2"))
}

func TestZap_Filesystem_Idempotent(t *testing.T) {
	t.Parallel()

	zapper := newFilesystemZapper(t)
	cfg := seedTree(t)

	first := zapper.Zap(context.Background(), cfg)
	require.True(t, first.Mutated())

	second := zapper.Zap(context.Background(), cfg)

	assert.False(t, second.Mutated())
	assert.Zero(t, second.Failed)
	assert.Positive(t, second.SkippedMissing)
}

func TestZap_Filesystem_GuardRefusal(t *testing.T) {
	t.Parallel()

	zapper := newFilesystemZapper(t)
	cfg := seedTree(t)

	outside := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(outside, "caches/build-cache-1"), 0o750))
	cfg.GradleUserHome = outside
	cfg.Aggressive = true

	sum := zapper.Zap(context.Background(), cfg)

	// The refused cache home is untouched; the project purge still ran.
	assert.DirExists(t, filepath.Join(outside, "caches/build-cache-1"))
	assert.NoDirExists(t, filepath.Join(cfg.ProjectRoot, "build"))
	assert.DirExists(t, filepath.Join(cfg.XDGCacheHome, "gradle"))
	assert.True(t, sum.Mutated())
}
