package fs

import (
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Expander implements ports.PatternExpander using doublestar globs.
type Expander struct{}

// NewExpander creates a new Expander.
func NewExpander() *Expander {
	return &Expander{}
}

// Expand resolves shell-style glob patterns rooted at base. Patterns that
// match nothing contribute no paths and are not an error. Results follow
// pattern declaration order; matches within one pattern are sorted so that
// dry-run output is reproducible.
func (e *Expander) Expand(base string, patterns []string) []string {
	var paths []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(filepath.Join(base, pattern))
		if err != nil {
			// A malformed pattern contributes nothing.
			continue
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}

	return paths
}
