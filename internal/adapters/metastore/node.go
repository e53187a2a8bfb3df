package metastore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/incjc/internal/core/ports"
)

// NodeID is the unique identifier for the metadata store Graft node.
const NodeID graft.ID = "adapter.metastore"

func init() {
	graft.Register(graft.Node[ports.MetaStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MetaStore, error) {
			return NewStore(), nil
		},
	})
}
