// Package shell provides the external process runner adapter.
package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/gzap/internal/core/domain"
	"go.trai.ch/gzap/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// Run spawns argv in dir and blocks until it exits. Subprocess output is
// streamed through the logger. In dry-run mode nothing is executed and the
// NotRun sentinel is returned. A failure to start the process is reported
// as a synthetic -1 exit carrying the cause; it never propagates.
func (r *Runner) Run(ctx context.Context, argv []string, dir string, dryRun bool) domain.CommandResult {
	result := domain.CommandResult{Argv: argv, Dir: dir}

	if len(argv) == 0 || dryRun {
		result.NotRun = true
		return result
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // command is gradle, resolved by us
	cmd.Dir = dir
	cmd.Stdout = &logWriter{logger: r.logger, warn: false}
	cmd.Stderr = &logWriter{logger: r.logger, warn: true}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result
		}

		result.ExitCode = -1
		result.Cause = zerr.With(
			zerr.Wrap(err, "failed to start command"),
			"command", strings.Join(argv, " "),
		)
		return result
	}

	return result
}

// ResolveGradle returns the executable to run gradle commands with: the
// project-local wrapper if it exists, otherwise a globally installed gradle
// binary found on PATH.
func (r *Runner) ResolveGradle(wrapper string) (string, error) {
	if info, err := os.Stat(wrapper); err == nil && !info.IsDir() {
		return wrapper, nil
	}

	if path, err := exec.LookPath(domain.GradleBinaryName); err == nil {
		return path, nil
	}

	return "", domain.ErrGradleNotFound
}

// logWriter forwards subprocess output to the logger line by line.
type logWriter struct {
	logger ports.Logger
	warn   bool
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if w.warn {
			w.logger.Warn(line)
		} else {
			w.logger.Info(line)
		}
	}
	return len(p), nil
}
