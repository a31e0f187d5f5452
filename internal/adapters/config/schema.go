package config

// Zapfile represents the structure of the optional gzap.yaml project file.
// It only provides path defaults; behavior switches come from flags alone.
type Zapfile struct {
	Gradlew        string `yaml:"gradlew"`
	GradleUserHome string `yaml:"gradleUserHome"`
	XDGCacheHome   string `yaml:"xdgCacheHome"`
}
