package planner_test

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bakehouse/internal/adapters/logger"
	"go.trai.ch/bakehouse/internal/core/domain"
	"go.trai.ch/bakehouse/internal/engine/planner"
	"go.trai.ch/bakehouse/internal/engine/resolver"
)

func pkg(path, name, node string, deps map[string]string) domain.Package {
	return domain.Package{
		Path: path,
		Manifest: domain.PackageManifest{
			Name:         name,
			Version:      "1.0.0",
			Dependencies: deps,
			NodeVersion:  node,
		},
	}
}

func resolve(t *testing.T, ws *domain.Workspace) *domain.DependencyGraph {
	t.Helper()
	graph, err := resolver.New(logger.NewWithWriter(io.Discard)).Resolve(ws)
	require.NoError(t, err)
	return graph
}

func newPlanner() *planner.Planner {
	return planner.New(logger.NewWithWriter(io.Discard))
}

func TestPlanner_SampleWorkspace(t *testing.T) {
	graph := resolve(t, &domain.Workspace{
		Root: pkg("/ws", "sample-monorepo", ">=20", nil),
		Members: []domain.Package{
			pkg("/ws/apps/api", "@sample/api", "", map[string]string{"@sample/logger": "workspace:*", "winston": "^3"}),
			pkg("/ws/packages/logger", "@sample/logger", "18.x", nil),
		},
	})

	plan, err := newPlanner().Plan(graph, planner.Options{PackageManager: "pnpm", NodeVersion: "lts"})
	require.NoError(t, err)

	bake := plan.BakeFile
	assert.Equal(t, []string{"sample-api", "sample-logger"}, bake.Group[domain.DefaultGroupName].Targets)

	assert.Equal(t, domain.Target{
		Context:    ".",
		Dockerfile: domain.DefaultDockerfile,
		Tags:       []string{"sample-monorepo:1.0.0"},
		DependsOn:  []string{},
	}, bake.Target[domain.RootTargetName])

	assert.Equal(t, domain.Target{
		Context:    "apps/api",
		Dockerfile: domain.DefaultDockerfile,
		Tags:       []string{"sample-api:1.0.0"},
		DependsOn:  []string{"root", "sample-logger"},
		Contexts:   map[string]string{"root": "target:root"},
	}, bake.Target["sample-api"])

	require.Len(t, plan.Provisions, 3)

	rootReq := plan.Provisions[0]
	assert.True(t, rootReq.Root)
	assert.Equal(t, "20", rootReq.NodeVersion)
	assert.Equal(t, filepath.Join("/ws", domain.DefaultDockerfile), rootReq.DockerfilePath())

	apiReq := plan.Provisions[1]
	assert.Equal(t, "sample-api", apiReq.Target)
	assert.Equal(t, "20", apiReq.NodeVersion, "members fall back to the root engines hint")
	assert.Equal(t, []string{"root", "sample-logger"}, apiReq.Dependencies)
	assert.Equal(t, "pnpm", apiReq.PackageManager)

	loggerReq := plan.Provisions[2]
	assert.Equal(t, "18", loggerReq.NodeVersion)
}

func TestPlanner_RootOnly(t *testing.T) {
	graph := resolve(t, &domain.Workspace{Root: pkg("/ws", "lonely", "", nil)})

	plan, err := newPlanner().Plan(graph, planner.Options{Dockerfile: "Dockerfile.ci", NodeVersion: "22"})
	require.NoError(t, err)

	assert.Len(t, plan.BakeFile.Target, 1)
	assert.Equal(t, "Dockerfile.ci", plan.BakeFile.Target[domain.RootTargetName].Dockerfile)
	assert.Empty(t, plan.BakeFile.Group[domain.DefaultGroupName].Targets)
	require.Len(t, plan.Provisions, 1)
	assert.Equal(t, "22", plan.Provisions[0].NodeVersion)
}

func TestPlanner_Templates(t *testing.T) {
	graph := resolve(t, &domain.Workspace{
		Root: pkg("/ws", "mono", "", nil),
		Members: []domain.Package{
			pkg("/ws/apps/web", "web", "", nil),
			pkg("/ws/packages/ui", "ui", "", nil),
			pkg("/ws/tools/cli", "cli", "", nil),
		},
	})

	plan, err := newPlanner().Plan(graph, planner.Options{
		Templates: map[string]string{
			"apps/*":     "templates/app.dockerfile",
			"apps/**":    "templates/never.dockerfile",
			"packages/*": "/abs/lib.dockerfile",
		},
	})
	require.NoError(t, err)

	byTarget := map[string]string{}
	for _, req := range plan.Provisions {
		byTarget[req.Target] = req.Template
	}
	assert.Equal(t, filepath.Join("/ws", "templates/app.dockerfile"), byTarget["web"])
	assert.Equal(t, "/abs/lib.dockerfile", byTarget["ui"])
	assert.Empty(t, byTarget["cli"])
	assert.Empty(t, byTarget[domain.RootTargetName])
}

func TestPlanner_InvalidTemplateGlob(t *testing.T) {
	graph := resolve(t, &domain.Workspace{Root: pkg("/ws", "mono", "", nil)})

	_, err := newPlanner().Plan(graph, planner.Options{Templates: map[string]string{"apps/[": "x"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidGlob.Error())
}
