package workspace

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bakehouse/internal/adapters/fs"
	"go.trai.ch/bakehouse/internal/adapters/logger"
	"go.trai.ch/bakehouse/internal/adapters/manifest"
	"go.trai.ch/bakehouse/internal/core/ports"
)

const (
	// ScannerNodeID is the unique identifier for the scanner Graft node.
	ScannerNodeID graft.ID = "adapter.workspace.scanner"
	// ResolversNodeID is the unique identifier for the resolver list Graft node.
	ResolversNodeID graft.ID = "adapter.workspace.resolvers"
)

func init() {
	graft.Register(graft.Node[*Scanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.WalkerNodeID, manifest.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Scanner, error) {
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			reader, err := graft.Dep[ports.ManifestReader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(walker, reader, log), nil
		},
	})

	// The first resolver is the fallback when no workspace marker is detected.
	graft.Register(graft.Node[[]ports.WorkspaceResolver]{
		ID:        ResolversNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ScannerNodeID, manifest.NodeID, logger.NodeID},
		Run: func(ctx context.Context) ([]ports.WorkspaceResolver, error) {
			scanner, err := graft.Dep[*Scanner](ctx)
			if err != nil {
				return nil, err
			}
			reader, err := graft.Dep[ports.ManifestReader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return []ports.WorkspaceResolver{
				NewPnpmResolver(scanner, reader, log),
				NewNpmResolver(scanner, reader, log),
			}, nil
		},
	})
}
