package progress

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/samogon/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in adapter layer
	"go.trai.ch/samogon/internal/core/ports"
)

const (
	// RendererNodeID is the unique identifier for the line renderer Graft node.
	RendererNodeID graft.ID = "adapter.progress.renderer"
	// NodeID is the unique identifier for the combined progress sink Graft node.
	NodeID graft.ID = "adapter.progress"
)

func init() {
	graft.Register(graft.Node[*Renderer]{
		ID:        RendererNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Renderer, error) {
			return NewRenderer(nil), nil
		},
	})

	graft.Register(graft.Node[ports.ProgressSink]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{RendererNodeID, progrock.NodeID},
		Run: func(ctx context.Context) (ports.ProgressSink, error) {
			renderer, err := graft.Dep[*Renderer](ctx)
			if err != nil {
				return nil, err
			}
			recorder, err := graft.Dep[*progrock.Recorder](ctx)
			if err != nil {
				return nil, err
			}
			return Multi{renderer, recorder}, nil
		},
	})
}
