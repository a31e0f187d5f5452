package ports

import (
	"context"

	"go.trai.ch/gzap/internal/core/domain"
)

// CommandRunner defines the interface for invoking external build-tool commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run spawns argv in dir and waits for completion. In dry-run mode it
	// returns the NotRun sentinel without executing anything. A failure
	// to even start the process is reported as a synthetic -1 exit with
	// a cause, never as a propagated error.
	Run(ctx context.Context, argv []string, dir string, dryRun bool) domain.CommandResult

	// ResolveGradle returns the executable to use for gradle commands:
	// the project-local wrapper if it exists, otherwise a globally
	// installed gradle binary, otherwise domain.ErrGradleNotFound.
	ResolveGradle(wrapper string) (string, error)
}
