package bottle

import (
	"context"
	"net/http"

	"github.com/grindlemire/graft"
	"go.trai.ch/samogon/internal/adapters/cas"      //nolint:depguard // Wired in adapter layer
	"go.trai.ch/samogon/internal/adapters/config"   //nolint:depguard // Wired in adapter layer
	"go.trai.ch/samogon/internal/adapters/logger"   //nolint:depguard // Wired in adapter layer
	"go.trai.ch/samogon/internal/adapters/progress" //nolint:depguard // Wired in adapter layer
	"go.trai.ch/samogon/internal/core/domain"
	"go.trai.ch/samogon/internal/core/ports"
)

// NodeID is the unique identifier for the bottle fetcher Graft node.
const NodeID graft.ID = "adapter.bottle"

func init() {
	graft.Register(graft.Node[ports.BottleFetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, cas.NodeID, progress.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.BottleFetcher, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			cache, err := graft.Dep[ports.ArtifactCache](ctx)
			if err != nil {
				return nil, err
			}
			sink, err := graft.Dep[ports.ProgressSink](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			// Bottles can be large; the request context bounds the transfer instead of a client timeout.
			return NewFetcher(&http.Client{}, cache, sink, log, cfg), nil
		},
	})
}
