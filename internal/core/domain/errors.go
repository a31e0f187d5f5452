package domain

import "go.trai.ch/zerr"

var (
	// ErrGradleNotFound is returned when neither the project wrapper nor a
	// globally installed gradle binary can be found.
	ErrGradleNotFound = zerr.New("gradle wrapper or gradle binary not found")
)
