package formulae

import (
	"context"
	"net/http"

	"github.com/grindlemire/graft"
	"go.trai.ch/samogon/internal/adapters/config"   //nolint:depguard // Wired in adapter layer
	"go.trai.ch/samogon/internal/adapters/logger"   //nolint:depguard // Wired in adapter layer
	"go.trai.ch/samogon/internal/adapters/snapshot" //nolint:depguard // Wired in adapter layer
	"go.trai.ch/samogon/internal/core/domain"
	"go.trai.ch/samogon/internal/core/ports"
)

const (
	// ClientNodeID is the unique identifier for the remote index client Graft node.
	ClientNodeID graft.ID = "adapter.formulae.client"
	// NodeID is the unique identifier for the repository loader Graft node.
	NodeID graft.ID = "adapter.formulae"
)

func init() {
	graft.Register(graft.Node[ports.FormulaSource]{
		ID:        ClientNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.FormulaSource, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(&http.Client{Timeout: cfg.MetadataTimeout}, cfg.FormulaeURL, log), nil
		},
	})

	graft.Register(graft.Node[ports.RepositoryLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{snapshot.NodeID, ClientNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.RepositoryLoader, error) {
			store, err := graft.Dep[ports.SnapshotStore](ctx)
			if err != nil {
				return nil, err
			}
			source, err := graft.Dep[ports.FormulaSource](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(store, source, log), nil
		},
	})
}
