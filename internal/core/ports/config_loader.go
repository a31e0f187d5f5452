package ports

import "go.trai.ch/gzap/internal/core/domain"

// ConfigLoader defines the interface for assembling the run configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load builds the immutable RunConfig for this invocation from the
	// explicit flags, environment defaults, and the optional project
	// configuration file, in that order of precedence.
	Load(flags domain.Flags) (domain.RunConfig, error)
}
