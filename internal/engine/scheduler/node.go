package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/samogon/internal/adapters/archive"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/samogon/internal/adapters/bottle"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/samogon/internal/adapters/progress"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/samogon/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/samogon/internal/core/ports"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			bottle.NodeID,
			archive.NodeID,
			progress.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			fetcher, err := graft.Dep[ports.BottleFetcher](ctx)
			if err != nil {
				return nil, err
			}

			stager, err := graft.Dep[ports.Stager](ctx)
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

			return NewScheduler(fetcher, stager, sink, tracer), nil
		},
	})
}
