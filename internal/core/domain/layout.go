package domain

import "path/filepath"

const (
	// BuildDirName is the name of Gradle's project-local build output directory.
	BuildDirName = "build"

	// GradleDirName is the name of Gradle's project-local tool-state directory,
	// and also of the default user home directory under $HOME.
	GradleDirName = ".gradle"

	// KonanDirName is the name of the Kotlin/Native toolchain directory under $HOME.
	KonanDirName = ".konan"

	// CachesDirName is the name of the caches directory inside the Gradle user home.
	CachesDirName = "caches"

	// KotlinShardName is the name of the Kotlin compiler cache shard nested
	// inside each versioned caches subdirectory.
	KotlinShardName = "kotlin"

	// XDGCacheDirName is the name of the default XDG cache directory under $HOME.
	XDGCacheDirName = ".cache"

	// XDGGradleDirName is the name of Gradle's subdirectory inside the XDG cache home.
	XDGGradleDirName = "gradle"

	// DefaultWrapperPath is the conventional project-relative Gradle wrapper path.
	DefaultWrapperPath = "./gradlew"

	// GradleBinaryName is the globally installed Gradle binary to fall back to
	// when no wrapper is present.
	GradleBinaryName = "gradle"

	// GradleUserHomeEnv is the environment variable overriding the Gradle user home.
	GradleUserHomeEnv = "GRADLE_USER_HOME"

	// XDGCacheHomeEnv is the environment variable overriding the XDG cache home.
	XDGCacheHomeEnv = "XDG_CACHE_HOME"

	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "gzap.yaml"
)

// ArtifactDirNames returns the directory names recorded as project-local
// removal targets. They are recorded at the highest level they appear and
// never descended into.
func ArtifactDirNames() []string {
	return []string{BuildDirName, GradleDirName}
}

// PruneDirNames returns the directory names excluded from project traversal.
// The artifact names are included so a recorded directory is never walked.
func PruneDirNames() []string {
	return []string{
		".git",
		".idea",
		".vscode",
		".venv",
		"venv",
		"node_modules",
		BuildDirName,
		GradleDirName,
	}
}

// SafeCacheSubdirs returns Gradle user home subdirectories that are always
// safe to remove: the daemon registry and notification state.
func SafeCacheSubdirs() []string {
	return []string{"daemon", "notifications"}
}

// SafeCachePatterns returns glob patterns, relative to the Gradle user home,
// for the safe subset of the user-level cache prune.
func SafeCachePatterns() []string {
	return []string{
		CachesDirName + "/build-cache-*",
		"vcs-*",
	}
}

// KotlinShardPattern returns the glob pattern, relative to the Gradle user
// home, matching the Kotlin cache shard inside every immediate child of the
// caches directory.
func KotlinShardPattern() string {
	return filepath.Join(CachesDirName, "*", KotlinShardName)
}

// AggressiveCachePatterns returns glob patterns, relative to the Gradle user
// home, for caches that are expensive to regenerate: downloaded dependency
// modules, compiled-artifact caches, and wrapper distributions.
func AggressiveCachePatterns() []string {
	return []string{
		CachesDirName + "/modules-2",
		CachesDirName + "/jars-*",
		CachesDirName + "/transforms-*",
		"wrapper/dists",
	}
}
