package bake

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bakehouse/internal/core/ports"
)

// NodeID is the unique identifier for the bake codec list Graft node.
const NodeID graft.ID = "adapter.bake_codecs"

func init() {
	graft.Register(graft.Node[[]ports.BakeCodec]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) ([]ports.BakeCodec, error) {
			return []ports.BakeCodec{NewHCLCodec(), NewJSONCodec()}, nil
		},
	})
}
