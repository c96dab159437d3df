// Package domain contains the core domain models for workspace discovery,
// dependency resolution and bake file planning.
package domain

import (
	"errors"
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Edge is a dependency edge between two package indices in a DependencyGraph.
// From depends on To.
type Edge struct {
	From int
	To   int
}

// DependencyGraph is an arena of packages plus an edge list.
// Index 0 always holds the root package.
type DependencyGraph struct {
	nodes []Package
	index map[string]int
	edges []Edge
	adj   [][]int
}

// NewDependencyGraph creates a graph seeded with the root package.
// The root's name is forced to RootTargetName.
func NewDependencyGraph(root Package) *DependencyGraph {
	root.Name = RootTargetName
	root.Dependencies = nil
	return &DependencyGraph{
		nodes: []Package{root},
		index: map[string]int{RootTargetName: 0},
		adj:   [][]int{nil},
	}
}

// AddPackage adds a member package to the graph.
// It returns ErrNameCollision if a package with the same target name exists,
// or if the name is the root package's image name.
func (g *DependencyGraph) AddPackage(p Package) error {
	existing, exists := g.index[p.Name]
	if !exists && p.Name == g.nodes[0].ImageName() {
		existing, exists = 0, true
	}
	if exists {
		msg := p.Path + " and " + g.nodes[existing].Path + " both map to " + p.Name
		detail := zerr.With(zerr.New(msg), "target", p.Name)
		detail = zerr.With(detail, "manifest_name", p.Manifest.Name)
		detail = zerr.With(detail, "path", p.Path)
		detail = zerr.With(detail, "conflicts_with", g.nodes[existing].Path)
		return errors.Join(ErrNameCollision, detail)
	}
	p.Dependencies = nil
	g.index[p.Name] = len(g.nodes)
	g.nodes = append(g.nodes, p)
	g.adj = append(g.adj, nil)
	return nil
}

// AddEdge records that target from depends on target to.
// Duplicate edges are ignored.
func (g *DependencyGraph) AddEdge(from, to string) error {
	fromIdx, ok := g.index[from]
	if !ok {
		return errors.Join(ErrUnknownTarget, zerr.With(zerr.New(from), "target", from))
	}
	toIdx, ok := g.index[to]
	if !ok {
		return errors.Join(ErrUnknownTarget, zerr.With(zerr.New(to), "target", to))
	}
	if slices.Contains(g.adj[fromIdx], toIdx) {
		return nil
	}
	g.adj[fromIdx] = append(g.adj[fromIdx], toIdx)
	g.edges = append(g.edges, Edge{From: fromIdx, To: toIdx})
	return nil
}

// Lookup maps a sanitized manifest name to its target name.
// The root package is reachable by both RootTargetName and its image name.
func (g *DependencyGraph) Lookup(sanitized string) (string, bool) {
	if _, ok := g.index[sanitized]; ok {
		return sanitized, true
	}
	if sanitized == g.nodes[0].ImageName() {
		return RootTargetName, true
	}
	return "", false
}

// Len returns the number of packages in the graph, root included.
func (g *DependencyGraph) Len() int {
	return len(g.nodes)
}

// Has reports whether a package with the given target name exists.
func (g *DependencyGraph) Has(name string) bool {
	_, ok := g.index[name]
	return ok
}

// Root returns the root package.
func (g *DependencyGraph) Root() Package {
	return g.withDependencies(0)
}

// Package returns the package with the given target name.
func (g *DependencyGraph) Package(name string) (Package, bool) {
	idx, ok := g.index[name]
	if !ok {
		return Package{}, false
	}
	return g.withDependencies(idx), true
}

// Members returns every non-root package sorted by target name,
// with its resolved dependencies populated.
func (g *DependencyGraph) Members() []Package {
	members := make([]Package, 0, len(g.nodes)-1)
	for idx := 1; idx < len(g.nodes); idx++ {
		members = append(members, g.withDependencies(idx))
	}
	slices.SortFunc(members, func(a, b Package) int {
		return strings.Compare(a.Name, b.Name)
	})
	return members
}

// Edges yields every dependency edge as a (from, to) pair of target names.
func (g *DependencyGraph) Edges() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, e := range g.edges {
			if !yield(g.nodes[e.From].Name, g.nodes[e.To].Name) {
				return
			}
		}
	}
}

// Dependencies returns the target names the named package depends on:
// the root first when present, then the rest in lexicographic order.
func (g *DependencyGraph) Dependencies(name string) []string {
	idx, ok := g.index[name]
	if !ok {
		return nil
	}
	return g.dependencies(idx)
}

func (g *DependencyGraph) dependencies(idx int) []string {
	deps := make([]string, 0, len(g.adj[idx]))
	hasRoot := false
	for _, to := range g.adj[idx] {
		if to == 0 {
			hasRoot = true
			continue
		}
		deps = append(deps, g.nodes[to].Name)
	}
	slices.Sort(deps)
	if hasRoot {
		deps = append([]string{RootTargetName}, deps...)
	}
	return deps
}

func (g *DependencyGraph) withDependencies(idx int) Package {
	p := g.nodes[idx]
	p.Dependencies = g.dependencies(idx)
	return p
}

// Validate checks the graph for cycles using a three-color depth-first search.
// Nodes are visited in index order so the reported cycle is deterministic.
func (g *DependencyGraph) Validate() error {
	const (
		white = iota
		gray
		black
	)
	color := make([]int, len(g.nodes))
	var path []int

	var visit func(u int) error
	visit = func(u int) error {
		color[u] = gray
		path = append(path, u)

		next := slices.Clone(g.adj[u])
		slices.Sort(next)
		for _, v := range next {
			switch color[v] {
			case gray:
				return g.buildCycleError(path, v)
			case white:
				if err := visit(v); err != nil {
					return err
				}
			}
		}

		color[u] = black
		path = path[:len(path)-1]
		return nil
	}

	for idx := range g.nodes {
		if color[idx] == white {
			if err := visit(idx); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func (g *DependencyGraph) buildCycleError(path []int, dep int) error {
	start := slices.Index(path, dep)
	names := make([]string, 0, len(path)-start+1)
	for _, idx := range path[start:] {
		names = append(names, g.nodes[idx].Name)
	}
	names = append(names, g.nodes[dep].Name)
	cycle := strings.Join(names, " -> ")
	return errors.Join(ErrCycleDetected, zerr.With(zerr.New(cycle), "cycle", cycle))
}
