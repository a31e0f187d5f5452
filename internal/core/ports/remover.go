// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/gzap/internal/core/domain"

// Remover defines the interface for the deletion primitive.
//
//go:generate go run go.uber.org/mock/mockgen -source=remover.go -destination=mocks/mock_remover.go -package=mocks
type Remover interface {
	// Remove deletes a single filesystem entry. Directories are removed
	// recursively, files and symlinks with a single unlink. A missing
	// target yields OutcomeSkippedMissing; in dry-run mode nothing is
	// mutated and the outcome is OutcomeWouldRemove. Failures are
	// reported as OutcomeFailed and never propagate.
	Remove(path string, dryRun bool) domain.Removal
}
