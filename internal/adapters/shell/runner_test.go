package shell_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gzap/internal/adapters/shell"
	"go.trai.ch/gzap/internal/core/domain"
	"go.trai.ch/gzap/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newRunner(t *testing.T) *shell.Runner {
	t.Helper()
	logger := mocks.NewMockLogger(gomock.NewController(t))
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return shell.NewRunner(logger)
}

func TestRunner_DryRunDoesNotExecute(t *testing.T) {
	t.Parallel()

	runner := newRunner(t)
	marker := filepath.Join(t.TempDir(), "ran")

	result := runner.Run(context.Background(), []string{"touch", marker}, t.TempDir(), true)

	assert.True(t, result.NotRun)
	assert.False(t, result.Failed())
	assert.NoFileExists(t, marker)
}

func TestRunner_EmptyArgv(t *testing.T) {
	t.Parallel()

	result := newRunner(t).Run(context.Background(), nil, t.TempDir(), false)

	assert.True(t, result.NotRun)
}

func TestRunner_ExitCodes(t *testing.T) {
	t.Parallel()

	runner := newRunner(t)

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		result := runner.Run(context.Background(), []string{"sh", "-c", "true"}, t.TempDir(), false)

		assert.False(t, result.NotRun)
		assert.False(t, result.Failed())
		assert.Zero(t, result.ExitCode)
		assert.NoError(t, result.Cause)
	})

	t.Run("nonzero exit is reported, not an error", func(t *testing.T) {
		t.Parallel()
		result := runner.Run(context.Background(), []string{"sh", "-c", "exit 3"}, t.TempDir(), false)

		assert.True(t, result.Failed())
		assert.Equal(t, 3, result.ExitCode)
		assert.NoError(t, result.Cause)
	})

	t.Run("spawn failure carries a cause", func(t *testing.T) {
		t.Parallel()
		result := runner.Run(context.Background(), []string{"/no/such/binary"}, t.TempDir(), false)

		assert.Equal(t, -1, result.ExitCode)
		assert.Error(t, result.Cause)
	})
}

func TestRunner_RunsInDir(t *testing.T) {
	t.Parallel()

	runner := newRunner(t)
	dir := t.TempDir()

	result := runner.Run(context.Background(), []string{"sh", "-c", "touch here"}, dir, false)

	require.False(t, result.Failed())
	assert.FileExists(t, filepath.Join(dir, "here"))
}

func TestRunner_StreamsOutput(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info("hello").MinTimes(1)
	logger.EXPECT().Warn("uh oh").MinTimes(1)
	runner := shell.NewRunner(logger)

	result := runner.Run(context.Background(), []string{"sh", "-c", "echo hello; echo 'uh oh' >&2"}, t.TempDir(), false)

	assert.False(t, result.Failed())
}

func TestRunner_ResolveGradle(t *testing.T) {
	runner := newRunner(t)

	t.Run("prefers the project wrapper", func(t *testing.T) {
		root := t.TempDir()
		wrapper := filepath.Join(root, "gradlew")
		require.NoError(t, os.WriteFile(wrapper, []byte("#!/bin/sh\n"), 0o700))

		resolved, err := runner.ResolveGradle(wrapper)

		require.NoError(t, err)
		assert.Equal(t, wrapper, resolved)
	})

	t.Run("falls back to gradle on PATH", func(t *testing.T) {
		bin := t.TempDir()
		gradle := filepath.Join(bin, "gradle")
		require.NoError(t, os.WriteFile(gradle, []byte("#!/bin/sh\n"), 0o700))
		t.Setenv("PATH", bin)

		resolved, err := runner.ResolveGradle(filepath.Join(t.TempDir(), "gradlew"))

		require.NoError(t, err)
		assert.Equal(t, gradle, resolved)
	})

	t.Run("a directory named gradlew does not count", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(root, "gradlew"), 0o750))
		t.Setenv("PATH", t.TempDir())

		_, err := runner.ResolveGradle(filepath.Join(root, "gradlew"))

		assert.ErrorIs(t, err, domain.ErrGradleNotFound)
	})

	t.Run("neither wrapper nor binary", func(t *testing.T) {
		t.Setenv("PATH", t.TempDir())

		_, err := runner.ResolveGradle(filepath.Join(t.TempDir(), "gradlew"))

		assert.ErrorIs(t, err, domain.ErrGradleNotFound)
	})
}
