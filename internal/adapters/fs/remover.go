package fs

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/gzap/internal/core/domain"
	"go.trai.ch/zerr"
)

// Remover implements ports.Remover. Every failure is converted into an
// outcome value; nothing propagates to the caller.
type Remover struct{}

// NewRemover creates a new Remover.
func NewRemover() *Remover {
	return &Remover{}
}

// Remove deletes a single filesystem entry, honoring dry-run mode.
func (r *Remover) Remove(path string, dryRun bool) domain.Removal {
	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Removal{Path: path, Outcome: domain.OutcomeSkippedMissing}
		}
		return failed(path, zerr.Wrap(err, "failed to stat removal target"))
	}

	if dryRun {
		return domain.Removal{Path: path, Outcome: domain.OutcomeWouldRemove}
	}

	if info.IsDir() && info.Mode()&os.ModeSymlink == 0 {
		return r.removeTree(path)
	}

	if err := os.Remove(path); err != nil {
		// The entry may have become a directory between the Lstat and the
		// unlink; fall back to recursive removal in that case.
		if current, statErr := os.Lstat(path); statErr == nil && current.IsDir() {
			return r.removeTree(path)
		}
		return failed(path, zerr.Wrap(err, "failed to remove file"))
	}

	return domain.Removal{Path: path, Outcome: domain.OutcomeRemoved}
}

// removeTree removes a directory recursively, best-effort. os.RemoveAll
// keeps going past entries it cannot delete; the call only counts as failed
// when the root itself survives.
func (r *Remover) removeTree(path string) domain.Removal {
	err := os.RemoveAll(path)
	if err == nil {
		return domain.Removal{Path: path, Outcome: domain.OutcomeRemoved}
	}

	if _, statErr := os.Lstat(path); errors.Is(statErr, fs.ErrNotExist) {
		return domain.Removal{Path: path, Outcome: domain.OutcomeRemoved}
	}

	return failed(path, zerr.Wrap(err, "failed to remove directory tree"))
}

func failed(path string, cause error) domain.Removal {
	return domain.Removal{
		Path:    path,
		Outcome: domain.OutcomeFailed,
		Cause:   zerr.With(cause, "path", path),
	}
}
