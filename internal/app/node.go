package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bakehouse/internal/adapters/bake"               //nolint:depguard // Wired in app layer
	"go.trai.ch/bakehouse/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/bakehouse/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/bakehouse/internal/adapters/dockerfile"         //nolint:depguard // Wired in app layer
	"go.trai.ch/bakehouse/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/bakehouse/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/bakehouse/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/bakehouse/internal/adapters/workspace"          //nolint:depguard // Wired in app layer
	"go.trai.ch/bakehouse/internal/core/ports"
	"go.trai.ch/bakehouse/internal/engine/planner"
	"go.trai.ch/bakehouse/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			workspace.ResolversNodeID,
			resolver.NodeID,
			planner.NodeID,
			dockerfile.NodeID,
			bake.NodeID,
			fs.FileSystemNodeID,
			fs.HasherNodeID,
			cas.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	workspaces, err := graft.Dep[[]ports.WorkspaceResolver](ctx)
	if err != nil {
		return nil, err
	}

	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	plan, err := graft.Dep[*planner.Planner](ctx)
	if err != nil {
		return nil, err
	}

	provisioner, err := graft.Dep[ports.DockerfileProvisioner](ctx)
	if err != nil {
		return nil, err
	}

	codecs, err := graft.Dep[[]ports.BakeCodec](ctx)
	if err != nil {
		return nil, err
	}

	files, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	stores, err := graft.Dep[ports.ProvenanceStoreFactory](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, workspaces, res, plan, provisioner, codecs, files, hasher, stores, telemetry, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, telemetry), nil
}
