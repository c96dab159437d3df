// Package planner computes the bake file and the build-instruction files a
// resolved workspace needs. Planning never touches the file system.
package planner

import (
	"maps"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/bakehouse/internal/core/domain"
	"go.trai.ch/bakehouse/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options configures a planning run.
type Options struct {
	// Dockerfile is the build-instruction file name used by every target.
	Dockerfile string

	// NodeVersion is the runtime version used when no manifest declares one.
	NodeVersion string

	// PackageManager is passed through to the provisioner.
	PackageManager string

	// Templates maps package context globs to template paths relative to the
	// workspace root.
	Templates map[string]string
}

// Planner builds BuildPlans.
type Planner struct {
	logger ports.Logger
}

// New creates a new Planner.
func New(logger ports.Logger) *Planner {
	return &Planner{logger: logger}
}

// Plan produces one target per package of graph plus the default group.
func (p *Planner) Plan(graph *domain.DependencyGraph, opts Options) (*domain.BuildPlan, error) {
	if opts.Dockerfile == "" {
		opts.Dockerfile = domain.DefaultDockerfile
	}

	rules, err := compileRules(opts.Templates)
	if err != nil {
		return nil, err
	}

	root := graph.Root()
	members := graph.Members()
	bake := domain.NewBakeFile()
	plan := &domain.BuildPlan{BakeFile: bake}

	bake.Target[domain.RootTargetName] = domain.Target{
		Context:    ".",
		Dockerfile: opts.Dockerfile,
		Tags:       []string{root.Tag()},
		DependsOn:  []string{},
	}
	plan.Provisions = append(plan.Provisions, domain.ProvisionRequest{
		Target:         domain.RootTargetName,
		ManifestName:   root.ManifestName(),
		Path:           root.Path,
		Context:        ".",
		Dockerfile:     opts.Dockerfile,
		NodeVersion:    domain.ResolveNodeVersion(root.Manifest.NodeVersion, opts.NodeVersion),
		PackageManager: opts.PackageManager,
		Template:       rules.match(root.Path, "."),
		Root:           true,
	})
	p.logger.Debug("target planned", "target", domain.RootTargetName, "context", ".")

	names := make([]string, 0, len(members))
	for _, m := range members {
		context := domain.ContextPath(root.Path, m.Path)
		target := domain.Target{
			Context:    context,
			Dockerfile: opts.Dockerfile,
			Tags:       []string{m.Tag()},
			DependsOn:  m.Dependencies,
		}
		if context != "." {
			target.Contexts = map[string]string{domain.RootTargetName: "target:" + domain.RootTargetName}
		}
		bake.Target[m.Name] = target
		names = append(names, m.Name)

		plan.Provisions = append(plan.Provisions, domain.ProvisionRequest{
			Target:         m.Name,
			ManifestName:   m.ManifestName(),
			Path:           m.Path,
			Context:        context,
			Dockerfile:     opts.Dockerfile,
			NodeVersion:    domain.ResolveNodeVersion(m.Manifest.NodeVersion, root.Manifest.NodeVersion, opts.NodeVersion),
			Dependencies:   m.Dependencies,
			PackageManager: opts.PackageManager,
			Template:       rules.match(root.Path, context),
		})
		p.logger.Debug("target planned", "target", m.Name, "context", context, "depends_on", m.Dependencies)
	}

	bake.Group[domain.DefaultGroupName] = domain.Group{Targets: names}
	return plan, nil
}

type templateRule struct {
	pattern string
	path    string
}

type templateRules []templateRule

// compileRules validates the template globs and orders them by pattern.
func compileRules(templates map[string]string) (templateRules, error) {
	rules := make(templateRules, 0, len(templates))
	for _, pattern := range slices.Sorted(maps.Keys(templates)) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, zerr.With(domain.ErrInvalidGlob, "pattern", pattern)
		}
		rules = append(rules, templateRule{pattern: pattern, path: templates[pattern]})
	}
	return rules, nil
}

// match returns the absolute template path of the first rule matching
// context, or an empty string.
func (r templateRules) match(root, context string) string {
	for _, rule := range r {
		if ok, _ := doublestar.Match(rule.pattern, context); !ok {
			continue
		}
		if filepath.IsAbs(rule.path) {
			return rule.path
		}
		return filepath.Join(root, rule.path)
	}
	return ""
}
