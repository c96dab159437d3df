// Package resolver turns discovered workspace packages into a validated
// dependency graph.
package resolver

import (
	"slices"
	"strings"

	"go.trai.ch/bakehouse/internal/core/domain"
	"go.trai.ch/bakehouse/internal/core/ports"
)

// Resolver computes workspace-scoped dependencies.
type Resolver struct {
	logger ports.Logger
}

// New creates a new Resolver.
func New(logger ports.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Resolve builds the dependency graph of ws.
//
// A declared dependency is kept only when its sanitized name belongs to
// another workspace package. Every member depends on the root. The graph is
// validated for cycles before it is returned.
func (r *Resolver) Resolve(ws *domain.Workspace) (*domain.DependencyGraph, error) {
	graph := domain.NewDependencyGraph(ws.Root)

	// Sort by path so collisions are reported deterministically.
	members := slices.Clone(ws.Members)
	slices.SortFunc(members, func(a, b domain.Package) int {
		return strings.Compare(a.Path, b.Path)
	})

	for _, m := range members {
		m.Name = domain.Sanitize(m.Manifest.Name)
		if err := graph.AddPackage(m); err != nil {
			return nil, err
		}
	}

	for _, m := range graph.Members() {
		for _, dep := range m.Manifest.DependencyNames() {
			target, ok := graph.Lookup(domain.Sanitize(dep))
			switch {
			case !ok:
				r.logger.Debug("dependency dropped", "target", m.Name, "dependency", dep)
				continue
			case target == m.Name:
				r.logger.Debug("self dependency dropped", "target", m.Name)
				continue
			}
			if err := graph.AddEdge(m.Name, target); err != nil {
				return nil, err
			}
			r.logger.Debug("dependency kept", "target", m.Name, "dependency", target)
		}

		if err := graph.AddEdge(m.Name, domain.RootTargetName); err != nil {
			return nil, err
		}
	}

	if err := graph.Validate(); err != nil {
		return nil, err
	}

	return graph, nil
}
