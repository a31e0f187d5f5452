package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/gzap/internal/adapters/fs"
)

func TestScanner_FindArtifactDirs(t *testing.T) {
	t.Parallel()

	scanner := fs.NewScanner()

	t.Run("finds build and .gradle at any depth", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		mustCreateFile(t, root, "build/libs/app.jar")
		mustCreateFile(t, root, ".gradle/caches/state.bin")
		mustCreateFile(t, root, "sub/project/build/out.txt")
		mustCreateFile(t, root, "sub/project/.gradle/state.bin")
		mustCreateFile(t, root, "src/main/kotlin/Main.kt")

		targets := scanner.FindArtifactDirs(root)

		assert.ElementsMatch(t, []string{
			filepath.Join(root, "build"),
			filepath.Join(root, ".gradle"),
			filepath.Join(root, "sub/project/build"),
			filepath.Join(root, "sub/project/.gradle"),
		}, targets)
	})

	t.Run("never looks inside pruned directories", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		mustCreateFile(t, root, ".git/build/marker")
		mustCreateFile(t, root, "node_modules/dep/build/out.js")
		mustCreateFile(t, root, ".venv/build/lib.py")
		mustCreateFile(t, root, ".idea/build/misc.xml")

		assert.Empty(t, scanner.FindArtifactDirs(root))
	})

	t.Run("does not descend into artifact directories", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		// A nested build inside build must not be reported twice.
		mustCreateFile(t, root, "build/generated/build/inner.txt")
		mustCreateFile(t, root, "build/.gradle/state.bin")

		targets := scanner.FindArtifactDirs(root)

		assert.Equal(t, []string{filepath.Join(root, "build")}, targets)
	})

	t.Run("root itself is never a target", func(t *testing.T) {
		t.Parallel()
		parent := t.TempDir()
		root := mustCreateDir(t, parent, "build")
		mustCreateFile(t, parent, "build/out.txt")

		assert.Empty(t, scanner.FindArtifactDirs(root))
	})

	t.Run("ignores files named like artifacts", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		mustCreateFile(t, root, "build")

		assert.Empty(t, scanner.FindArtifactDirs(root))
	})

	t.Run("missing root yields nothing", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, scanner.FindArtifactDirs(filepath.Join(t.TempDir(), "gone")))
	})
}
