// Package app implements the application layer for bakehouse.
package app

import (
	"context"
	"errors"
	"path/filepath"

	"go.trai.ch/bakehouse/internal/core/domain"
	"go.trai.ch/bakehouse/internal/core/ports"
	"go.trai.ch/bakehouse/internal/engine/planner"
	"go.trai.ch/bakehouse/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	workspaces   []ports.WorkspaceResolver
	resolver     *resolver.Resolver
	planner      *planner.Planner
	provisioner  ports.DockerfileProvisioner
	codecs       []ports.BakeCodec
	files        ports.FileSystem
	hasher       ports.Hasher
	stores       ports.ProvenanceStoreFactory
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	workspaces []ports.WorkspaceResolver,
	res *resolver.Resolver,
	plan *planner.Planner,
	provisioner ports.DockerfileProvisioner,
	codecs []ports.BakeCodec,
	files ports.FileSystem,
	hasher ports.Hasher,
	stores ports.ProvenanceStoreFactory,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		workspaces:   workspaces,
		resolver:     res,
		planner:      plan,
		provisioner:  provisioner,
		codecs:       codecs,
		files:        files,
		hasher:       hasher,
		stores:       stores,
		telemetry:    telemetry,
		logger:       logger,
	}
}

// GenerateOptions holds the command line overrides for a run.
// Empty strings and false leave the configured value in place.
type GenerateOptions struct {
	Workspace    string
	Output       string
	Format       string
	RefreshStale bool
}

// run is the outcome of the read-only half of the pipeline.
type run struct {
	root    string
	output  string
	codec   ports.BakeCodec
	plan    *domain.BuildPlan
	refresh bool
}

// Generate discovers the workspace, writes missing build-instruction files
// and writes the bake file.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) error {
	r, err := a.prepare(ctx, opts)
	if err != nil {
		return err
	}

	encoded, err := r.codec.Encode(r.plan.BakeFile)
	if err != nil {
		return errors.Join(domain.ErrOutputWrite, err)
	}

	if err := a.provision(ctx, r.root, r.plan, r.refresh); err != nil {
		return err
	}

	err = a.phase(ctx, "write bake file", func(context.Context) error {
		if err := a.files.WriteFile(r.output, encoded); err != nil {
			return errors.Join(domain.ErrOutputWrite, zerr.With(err, "path", r.output))
		}
		return nil
	})
	if err != nil {
		return err
	}
	a.logger.Info("bake file written",
		"path", r.output,
		"format", r.codec.Format().String(),
		"targets", len(r.plan.BakeFile.Target),
	)
	return nil
}

// phase records fn as a telemetry vertex.
func (a *App) phase(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, vertex := a.telemetry.Record(ctx, name)
	err := fn(ctx)
	vertex.Complete(err)
	return err
}

// prepare loads the configuration, validates the format and computes the
// build plan without writing anything.
func (a *App) prepare(ctx context.Context, opts GenerateOptions) (*run, error) {
	root := opts.Workspace
	if root == "" {
		root = "."
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve workspace root"), "path", opts.Workspace)
	}

	cfg, err := a.configLoader.Load(root)
	if err != nil {
		return nil, err
	}
	cfg = applyOverrides(cfg, opts)

	format, err := domain.ParseFormat(cfg.OutputFormat)
	if err != nil {
		return nil, err
	}
	codec, err := a.codec(format)
	if err != nil {
		return nil, err
	}

	wsResolver, err := a.selectWorkspaceResolver(cfg.PackageManager, root)
	if err != nil {
		return nil, err
	}
	a.logger.Info("workspace detected", "root", root, "package_manager", wsResolver.Name())

	var ws *domain.Workspace
	err = a.phase(ctx, "scan workspace", func(ctx context.Context) error {
		ws, err = wsResolver.Resolve(ctx, root, cfg.Ignore)
		return err
	})
	if err != nil {
		return nil, err
	}

	var graph *domain.DependencyGraph
	err = a.phase(ctx, "resolve dependencies", func(context.Context) error {
		graph, err = a.resolver.Resolve(ws)
		return err
	})
	if err != nil {
		return nil, err
	}

	var plan *domain.BuildPlan
	err = a.phase(ctx, "plan targets", func(context.Context) error {
		plan, err = a.planner.Plan(graph, planner.Options{
			Dockerfile:     cfg.Dockerfile,
			NodeVersion:    cfg.NodeVersion,
			PackageManager: ws.PackageManager,
			Templates:      cfg.Templates,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	output := cfg.Output
	if !filepath.IsAbs(output) {
		output = filepath.Join(root, output)
	}

	return &run{
		root:    ws.Root.Path,
		output:  output,
		codec:   codec,
		plan:    plan,
		refresh: cfg.RefreshStale,
	}, nil
}

// applyOverrides layers explicitly set command line options over cfg.
func applyOverrides(cfg domain.Config, opts GenerateOptions) domain.Config {
	if opts.Format != "" {
		cfg.OutputFormat = opts.Format
	}
	if opts.Output != "" {
		cfg.Output = opts.Output
	}
	if opts.RefreshStale {
		cfg.RefreshStale = true
	}
	return cfg
}

func (a *App) codec(format domain.Format) (ports.BakeCodec, error) {
	for _, c := range a.codecs {
		if c.Format() == format {
			return c, nil
		}
	}
	return nil, errors.Join(domain.ErrUnsupportedFormat, zerr.With(zerr.New("no codec registered"), "format", format.String()))
}

// selectWorkspaceResolver picks the configured resolver, else the first one
// that detects the workspace, else the first registered one.
func (a *App) selectWorkspaceResolver(name, root string) (ports.WorkspaceResolver, error) {
	if name != "" {
		for _, r := range a.workspaces {
			if r.Name() == name {
				return r, nil
			}
		}
		detail := zerr.With(zerr.New("no resolver named "+name), "package_manager", name)
		return nil, errors.Join(domain.ErrUnknownPackageManager, detail)
	}

	for _, r := range a.workspaces {
		if r.Detect(root) {
			return r, nil
		}
	}
	if len(a.workspaces) == 0 {
		return nil, domain.ErrUnknownPackageManager
	}
	return a.workspaces[0], nil
}
