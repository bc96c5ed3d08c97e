package prompt

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/samogon/internal/core/ports"
)

// NodeID is the unique identifier for the confirmation prompt Graft node.
const NodeID graft.ID = "adapter.prompt"

func init() {
	graft.Register(graft.Node[ports.Confirmer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Confirmer, error) {
			return New(nil, nil), nil
		},
	})
}
