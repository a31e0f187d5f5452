package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gzap/internal/core/ports"
)

const (
	// RemoverNodeID is the unique identifier for the Remover Graft node.
	RemoverNodeID graft.ID = "adapter.fs.remover"
	// ScannerNodeID is the unique identifier for the Scanner Graft node.
	ScannerNodeID graft.ID = "adapter.fs.scanner"
	// ExpanderNodeID is the unique identifier for the Expander Graft node.
	ExpanderNodeID graft.ID = "adapter.fs.expander"
	// GuardNodeID is the unique identifier for the HomeGuard Graft node.
	GuardNodeID graft.ID = "adapter.fs.guard"
)

func init() {
	graft.Register(graft.Node[ports.Remover]{
		ID:        RemoverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Remover, error) {
			return NewRemover(), nil
		},
	})

	graft.Register(graft.Node[ports.ArtifactScanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactScanner, error) {
			return NewScanner(), nil
		},
	})

	graft.Register(graft.Node[ports.PatternExpander]{
		ID:        ExpanderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PatternExpander, error) {
			return NewExpander(), nil
		},
	})

	graft.Register(graft.Node[ports.HomeGuard]{
		ID:        GuardNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HomeGuard, error) {
			return NewHomeGuard(), nil
		},
	})
}
