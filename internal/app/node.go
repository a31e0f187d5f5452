package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gzap/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/gzap/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/gzap/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/gzap/internal/adapters/shell"  //nolint:depguard // Wired in app layer
	"go.trai.ch/gzap/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the Zapper Graft node.
	AppNodeID graft.ID = "app.zapper"
	// ComponentsNodeID is the unique identifier for the Components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*Zapper]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			shell.NodeID,
			fs.RemoverNodeID,
			fs.ExpanderNodeID,
			fs.ScannerNodeID,
			fs.GuardNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*Zapper, error) {
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[ports.CommandRunner](ctx)
	if err != nil {
		return nil, err
	}

	remover, err := graft.Dep[ports.Remover](ctx)
	if err != nil {
		return nil, err
	}

	expander, err := graft.Dep[ports.PatternExpander](ctx)
	if err != nil {
		return nil, err
	}

	scanner, err := graft.Dep[ports.ArtifactScanner](ctx)
	if err != nil {
		return nil, err
	}

	guard, err := graft.Dep[ports.HomeGuard](ctx)
	if err != nil {
		return nil, err
	}

	return New(log, runner, remover, expander, scanner, guard), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	zapper, err := graft.Dep[*Zapper](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    zapper,
		Logger: log,
		Loader: loader,
	}, nil
}
