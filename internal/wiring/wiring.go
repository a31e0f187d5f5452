// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/gzap/internal/adapters/config"
	_ "go.trai.ch/gzap/internal/adapters/fs"
	_ "go.trai.ch/gzap/internal/adapters/logger"
	_ "go.trai.ch/gzap/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/gzap/internal/app"
)
