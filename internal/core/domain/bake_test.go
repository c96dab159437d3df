package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/bakehouse/internal/core/domain"
)

func sampleBakeFile() *domain.BakeFile {
	b := domain.NewBakeFile()
	b.Group[domain.DefaultGroupName] = domain.Group{Targets: []string{"api"}}
	b.Target[domain.RootTargetName] = domain.Target{
		Context:    ".",
		Dockerfile: domain.DefaultDockerfile,
		Tags:       []string{"sample-monorepo:1.0.0"},
		DependsOn:  []string{},
	}
	b.Target["api"] = domain.Target{
		Context:    "apps/api",
		Dockerfile: domain.DefaultDockerfile,
		Tags:       []string{"sample-api:1.0.0"},
		DependsOn:  []string{"root"},
		Contexts:   map[string]string{"root": "target:root"},
	}
	return b
}

func TestBakeFile_TargetNames(t *testing.T) {
	b := sampleBakeFile()
	b.Target["aaa"] = domain.Target{}

	assert.Equal(t, []string{"root", "aaa", "api"}, b.TargetNames())
	assert.Equal(t, []string{"default"}, b.GroupNames())
}

func TestBakeFile_Diff(t *testing.T) {
	left := sampleBakeFile()
	right := sampleBakeFile()

	// nil and empty dependency lists are equivalent
	root := right.Target[domain.RootTargetName]
	root.DependsOn = nil
	right.Target[domain.RootTargetName] = root
	assert.True(t, left.Equal(right))

	api := right.Target["api"]
	api.DependsOn = []string{"root", "logger"}
	right.Target["api"] = api
	right.Group["extra"] = domain.Group{}

	assert.Equal(t, []string{"group.extra", "target.api"}, left.Diff(right))
	assert.False(t, left.Equal(right))
}
