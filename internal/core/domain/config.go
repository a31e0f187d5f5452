package domain

// RunConfig is the immutable configuration for a single zap run. It is
// assembled once at startup by the config loader and passed to every
// component; no component reads ambient process state directly.
type RunConfig struct {
	// ProjectRoot is the directory whose tree is scanned for artifacts.
	ProjectRoot string

	// Home is the resolved user home directory the safety guard compares against.
	Home string

	// Gradlew is the path to the project-local Gradle wrapper executable.
	Gradlew string

	// GradleUserHome is the user-level Gradle cache tree.
	GradleUserHome string

	// XDGCacheHome is the secondary (XDG-style) cache tree.
	XDGCacheHome string

	// DryRun replaces every destructive operation with a report of intent.
	DryRun bool

	// Aggressive additionally removes dependency caches and wrapper dists.
	Aggressive bool

	// IncludeKonan additionally removes the Kotlin/Native toolchain directory.
	IncludeKonan bool

	// Verbose enables per-removal debug output.
	Verbose bool
}

// Flags carries the raw command line flag values into the config loader.
// The Set booleans report whether a flag was given explicitly, so that an
// explicit flag always wins over environment and file defaults.
type Flags struct {
	Gradlew           string
	GradlewSet        bool
	GradleUserHome    string
	GradleUserHomeSet bool
	XDGCacheHome      string
	XDGCacheHomeSet   bool
	DryRun            bool
	Aggressive        bool
	IncludeKonan      bool
	Verbose           bool
}
