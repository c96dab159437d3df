package domain_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"go.trai.ch/bakehouse/internal/core/domain"
)

func newRoot() domain.Package {
	return domain.Package{
		Path:     "/ws",
		Manifest: domain.PackageManifest{Name: "sample-monorepo", Version: "1.0.0"},
	}
}

func member(name, path string) domain.Package {
	return domain.Package{
		Name:     domain.Sanitize(name),
		Path:     path,
		Manifest: domain.PackageManifest{Name: name, Version: "1.0.0"},
	}
}

func TestGraph_RootIsFixed(t *testing.T) {
	g := domain.NewDependencyGraph(newRoot())

	root := g.Root()
	if root.Name != domain.RootTargetName {
		t.Fatalf("expected root name %q, got %q", domain.RootTargetName, root.Name)
	}
	if root.Tag() != "sample-monorepo:1.0.0" {
		t.Errorf("expected root tag sample-monorepo:1.0.0, got %s", root.Tag())
	}
	if len(root.Dependencies) != 0 {
		t.Errorf("expected root to have no dependencies, got %v", root.Dependencies)
	}
}

func TestGraph_AddPackage_Collision(t *testing.T) {
	g := domain.NewDependencyGraph(newRoot())

	if err := g.AddPackage(member("@sample/api", "/ws/apps/api")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := g.AddPackage(member("Sample-API", "/ws/apps/other"))
	if err == nil {
		t.Fatal("expected collision error, got nil")
	}
	if !errors.Is(err, domain.ErrNameCollision) {
		t.Errorf("expected ErrNameCollision, got %v", err)
	}
	if !strings.Contains(err.Error(), "/ws/apps/api") {
		t.Errorf("expected error to name the conflicting path, got %v", err)
	}
}

func TestGraph_AddPackage_CollidesWithRoot(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{name: "fixed root name", manifest: "root"},
		{name: "root image name", manifest: "@Sample-Monorepo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := domain.NewDependencyGraph(newRoot())
			err := g.AddPackage(member(tt.manifest, "/ws/pkg"))
			if !errors.Is(err, domain.ErrNameCollision) {
				t.Errorf("expected ErrNameCollision, got %v", err)
			}
		})
	}
}

func TestGraph_Lookup(t *testing.T) {
	g := domain.NewDependencyGraph(newRoot())
	if err := g.AddPackage(member("@sample/logger", "/ws/packages/logger")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "sample-logger", want: "sample-logger", ok: true},
		{in: "sample-monorepo", want: domain.RootTargetName, ok: true},
		{in: domain.RootTargetName, want: domain.RootTargetName, ok: true},
		{in: "winston", ok: false},
	}
	for _, tt := range tests {
		got, ok := g.Lookup(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Lookup(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestGraph_AddEdge(t *testing.T) {
	g := domain.NewDependencyGraph(newRoot())
	for _, p := range []domain.Package{
		member("web", "/ws/apps/web"),
		member("ui", "/ws/packages/ui"),
		member("config", "/ws/packages/config"),
	} {
		if err := g.AddPackage(p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	for _, e := range [][2]string{
		{"web", "ui"},
		{"web", "config"},
		{"web", domain.RootTargetName},
		{"web", "ui"},
	} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%s, %s): %v", e[0], e[1], err)
		}
	}

	want := []string{domain.RootTargetName, "config", "ui"}
	if got := g.Dependencies("web"); !slices.Equal(got, want) {
		t.Errorf("expected dependencies %v, got %v", want, got)
	}

	count := 0
	for range g.Edges() {
		count++
	}
	if count != 3 {
		t.Errorf("expected 3 unique edges, got %d", count)
	}

	if err := g.AddEdge("web", "missing"); !strings.Contains(err.Error(), domain.ErrUnknownTarget.Error()) {
		t.Errorf("expected unknown target error, got %v", err)
	}
}

func TestGraph_Members_Sorted(t *testing.T) {
	g := domain.NewDependencyGraph(newRoot())
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := g.AddPackage(member(name, "/ws/"+name)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	var names []string
	for _, m := range g.Members() {
		names = append(names, m.Name)
	}
	if !slices.Equal(names, []string{"alpha", "mid", "zeta"}) {
		t.Errorf("expected sorted members, got %v", names)
	}
}

func TestGraph_Validate(t *testing.T) {
	g := domain.NewDependencyGraph(newRoot())
	for _, name := range []string{"a", "b", "c"} {
		if err := g.AddPackage(member(name, "/ws/"+name)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := g.AddEdge(name, domain.RootTargetName); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := g.AddEdge("a", "b"); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge("b", "c"); err != nil {
		t.Fatal(err)
	}

	if err := g.Validate(); err != nil {
		t.Fatalf("expected acyclic graph, got %v", err)
	}

	if err := g.AddEdge("c", "a"); err != nil {
		t.Fatal(err)
	}

	err := g.Validate()
	if err == nil {
		t.Fatal("expected cycle error, got nil")
	}
	if !errors.Is(err, domain.ErrCycleDetected) {
		t.Errorf("expected ErrCycleDetected, got %v", err)
	}
	if !strings.Contains(err.Error(), "a -> b -> c -> a") {
		t.Errorf("expected cycle path in error, got %v", err)
	}
}
