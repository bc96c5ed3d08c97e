package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/samogon/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/samogon/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/samogon/internal/adapters/formulae"  //nolint:depguard // Wired in app layer
	"go.trai.ch/samogon/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/samogon/internal/adapters/progress"  //nolint:depguard // Wired in app layer
	"go.trai.ch/samogon/internal/adapters/prompt"    //nolint:depguard // Wired in app layer
	"go.trai.ch/samogon/internal/adapters/snapshot"  //nolint:depguard // Wired in app layer
	"go.trai.ch/samogon/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/samogon/internal/core/domain"
	"go.trai.ch/samogon/internal/core/ports"
	"go.trai.ch/samogon/internal/engine/scheduler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			formulae.NodeID,
			scheduler.NodeID,
			prompt.NodeID,
			progress.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
			cas.StoreNodeID,
			snapshot.StoreNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	repos, err := graft.Dep[ports.RepositoryLoader](ctx)
	if err != nil {
		return nil, err
	}

	sched, err := graft.Dep[*scheduler.Scheduler](ctx)
	if err != nil {
		return nil, err
	}

	confirmer, err := graft.Dep[ports.Confirmer](ctx)
	if err != nil {
		return nil, err
	}

	sink, err := graft.Dep[ports.ProgressSink](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	downloads, err := graft.Dep[*cas.Store](ctx)
	if err != nil {
		return nil, err
	}

	index, err := graft.Dep[*snapshot.Store](ctx)
	if err != nil {
		return nil, err
	}

	return New(repos, sched, confirmer, sink, tracer, log, downloads, index, cfg.MaxConcurrentFetches), nil
}
