package dockerfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bakehouse/internal/adapters/logger"
	"go.trai.ch/bakehouse/internal/core/ports"
)

// NodeID is the unique identifier for the Dockerfile provisioner Graft node.
const NodeID graft.ID = "adapter.dockerfile_provisioner"

func init() {
	graft.Register(graft.Node[ports.DockerfileProvisioner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.DockerfileProvisioner, error) {
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProvisioner(log), nil
		},
	})
}
