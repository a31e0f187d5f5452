// Package fs provides the filesystem adapters: the safety guard, the
// deletion primitive, the artifact scanner, and the pattern expander.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// HomeGuard implements ports.HomeGuard by resolving paths to their canonical
// absolute form and checking strict prefix containment.
type HomeGuard struct{}

// NewHomeGuard creates a new HomeGuard.
func NewHomeGuard() *HomeGuard {
	return &HomeGuard{}
}

// UnderHome reports whether path resolves to a location strictly inside home.
// home itself is never considered under home, so a cache home misconfigured
// to the home directory can never be wiped wholesale. Any resolution failure
// yields false; the guard fails closed.
func (g *HomeGuard) UnderHome(path, home string) bool {
	resolvedPath, err := resolvePath(path)
	if err != nil {
		return false
	}

	resolvedHome, err := resolvePath(home)
	if err != nil {
		return false
	}

	return strings.HasPrefix(resolvedPath, resolvedHome+string(os.PathSeparator))
}

// resolvePath canonicalizes a path, following symlinks and relative segments.
// A path that does not exist yet is resolved through its longest existing
// ancestor, with the missing suffix reattached lexically, so a cache
// directory that has not been created still passes the containment check.
func resolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	suffix := ""
	cur := abs
	for {
		resolved, err := filepath.EvalSymlinks(cur)
		if err == nil {
			return filepath.Join(resolved, suffix), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached the filesystem root without an existing ancestor.
			return "", err
		}
		suffix = filepath.Join(filepath.Base(cur), suffix)
		cur = parent
	}
}
