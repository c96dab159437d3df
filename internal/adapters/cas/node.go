package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bakehouse/internal/core/ports"
)

// NodeID is the unique identifier for the provenance store factory Graft node.
const NodeID graft.ID = "adapter.provenance_store"

func init() {
	graft.Register(graft.Node[ports.ProvenanceStoreFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProvenanceStoreFactory, error) {
			return NewFactory(), nil
		},
	})
}
