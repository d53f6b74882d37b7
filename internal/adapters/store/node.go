package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sift/internal/core/ports"
)

// NodeID is the unique identifier for the graph store Graft node.
const NodeID graft.ID = "adapter.graph_store"

func init() {
	graft.Register(graft.Node[ports.GraphStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.GraphStore, error) {
			return NewStore(), nil
		},
	})
}
