package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/incjc/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/incjc/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/incjc/internal/adapters/metastore" //nolint:depguard // Wired in app layer
	"go.trai.ch/incjc/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/incjc/internal/core/domain"
	"go.trai.ch/incjc/internal/core/ports"
	"go.trai.ch/incjc/internal/engine/incremental"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles what the command line needs to run.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			incremental.NodeID,
			metastore.NodeID,
			watcher.NodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			builder, err := graft.Dep[*incremental.Builder](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.MetaStore](ctx)
			if err != nil {
				return nil, err
			}

			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			return New(builder, store, w, log, cfg), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
