package fs

import (
	"io/fs"
	"path/filepath"

	"go.trai.ch/gzap/internal/core/domain"
)

// Scanner implements ports.ArtifactScanner with a single top-down walk.
type Scanner struct {
	artifacts map[string]struct{}
	prune     map[string]struct{}
}

// NewScanner creates a Scanner with the fixed artifact and prune sets.
func NewScanner() *Scanner {
	return &Scanner{
		artifacts: nameSet(domain.ArtifactDirNames()),
		prune:     nameSet(domain.PruneDirNames()),
	}
}

// FindArtifactDirs walks root once and returns every build artifact
// directory, in traversal order. Artifact directories are recorded at the
// highest level they appear and are not descended into, so a directory is
// never double-processed. Irrelevant subtrees are pruned without being
// recorded. Unreadable entries are skipped, never fatal.
func (s *Scanner) FindArtifactDirs(root string) []string {
	var targets []string

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() || path == root {
			return nil
		}

		name := d.Name()
		if _, ok := s.artifacts[name]; ok {
			targets = append(targets, path)
			return filepath.SkipDir
		}
		if _, ok := s.prune[name]; ok {
			return filepath.SkipDir
		}
		return nil
	})

	return targets
}

func nameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
