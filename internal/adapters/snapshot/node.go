package snapshot

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/samogon/internal/adapters/config" //nolint:depguard // Wired in adapter layer
	"go.trai.ch/samogon/internal/core/domain"
	"go.trai.ch/samogon/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the snapshot store Graft node.
	NodeID graft.ID = "adapter.snapshot"
	// StoreNodeID exposes the concrete store for maintenance commands.
	StoreNodeID graft.ID = "adapter.snapshot.store"
)

func init() {
	graft.Register(graft.Node[*Store]{
		ID:        StoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (*Store, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg.DataDir), nil
		},
	})

	graft.Register(graft.Node[ports.SnapshotStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{StoreNodeID},
		Run: func(ctx context.Context) (ports.SnapshotStore, error) {
			store, err := graft.Dep[*Store](ctx)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
