package archive

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/samogon/internal/core/ports"
)

// NodeID is the unique identifier for the archive stager Graft node.
const NodeID graft.ID = "adapter.archive"

func init() {
	graft.Register(graft.Node[ports.Stager]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Stager, error) {
			return NewStager(""), nil
		},
	})
}
