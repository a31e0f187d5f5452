// Package config assembles the run configuration for gzap.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/gzap/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader. It is the only component that reads
// ambient process state (environment, working directory, user home); the
// resulting RunConfig is immutable and passed to everything else by value.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load builds the RunConfig for this invocation. Precedence per value:
// explicit flag > environment variable > gzap.yaml > built-in default.
func (l *Loader) Load(flags domain.Flags) (domain.RunConfig, error) {
	root, err := os.Getwd()
	if err != nil {
		return domain.RunConfig{}, zerr.Wrap(err, "failed to resolve working directory")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return domain.RunConfig{}, zerr.Wrap(err, "failed to resolve home directory")
	}

	file, err := readProjectFile(filepath.Join(root, domain.ConfigFileName))
	if err != nil {
		return domain.RunConfig{}, err
	}

	cfg := domain.RunConfig{
		ProjectRoot:  root,
		Home:         home,
		DryRun:       flags.DryRun,
		Aggressive:   flags.Aggressive,
		IncludeKonan: flags.IncludeKonan,
		Verbose:      flags.Verbose,
	}

	cfg.Gradlew = pick(
		flagValue(flags.GradlewSet, flags.Gradlew),
		"",
		file.Gradlew,
		domain.DefaultWrapperPath,
	)
	cfg.GradleUserHome = pick(
		flagValue(flags.GradleUserHomeSet, flags.GradleUserHome),
		os.Getenv(domain.GradleUserHomeEnv),
		file.GradleUserHome,
		filepath.Join(home, domain.GradleDirName),
	)
	cfg.XDGCacheHome = pick(
		flagValue(flags.XDGCacheHomeSet, flags.XDGCacheHome),
		os.Getenv(domain.XDGCacheHomeEnv),
		file.XDGCacheHome,
		filepath.Join(home, domain.XDGCacheDirName),
	)

	return cfg, nil
}

// readProjectFile reads the optional gzap.yaml. A missing file is not an
// error; a present but unreadable or malformed one is.
func readProjectFile(path string) (Zapfile, error) {
	var file Zapfile

	data, err := os.ReadFile(path) //nolint:gosec // path is rooted at the project dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return file, nil
		}
		return file, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	return file, nil
}

func flagValue(set bool, value string) string {
	if set {
		return value
	}
	return ""
}

func pick(flag, env, file, fallback string) string {
	switch {
	case flag != "":
		return flag
	case env != "":
		return env
	case file != "":
		return file
	default:
		return fallback
	}
}
