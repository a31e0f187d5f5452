package app

import "go.trai.ch/gzap/internal/core/ports"

// Components aggregates the wired application pieces handed to the CLI.
type Components struct {
	App    *Zapper
	Logger ports.Logger
	Loader ports.ConfigLoader
}
