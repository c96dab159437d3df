package bake_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bakehouse/internal/adapters/bake"
	"go.trai.ch/bakehouse/internal/core/domain"
)

func sampleBakeFile() *domain.BakeFile {
	b := domain.NewBakeFile()
	b.Group[domain.DefaultGroupName] = domain.Group{Targets: []string{"sample-api", "sample-logger"}}
	b.Target[domain.RootTargetName] = domain.Target{
		Context:    ".",
		Dockerfile: domain.DefaultDockerfile,
		Tags:       []string{"sample-monorepo:1.0.0"},
		DependsOn:  []string{},
	}
	b.Target["sample-logger"] = domain.Target{
		Context:    "packages/logger",
		Dockerfile: domain.DefaultDockerfile,
		Tags:       []string{"sample-logger:1.0.0"},
		DependsOn:  []string{"root"},
		Contexts:   map[string]string{"root": "target:root"},
	}
	b.Target["sample-api"] = domain.Target{
		Context:    "apps/api",
		Dockerfile: domain.DefaultDockerfile,
		Tags:       []string{"sample-api:1.0.0"},
		DependsOn:  []string{"root", "sample-logger"},
		Contexts:   map[string]string{"root": "target:root"},
	}
	return b
}

const sampleHCL = `group "default" {
  targets = ["sample-api", "sample-logger"]
}

target "root" {
  context = "."
  dockerfile = "Dockerfile.bake"
  tags = ["sample-monorepo:1.0.0"]
}

target "sample-api" {
  context = "apps/api"
  dockerfile = "Dockerfile.bake"
  tags = ["sample-api:1.0.0"]
  depends_on = ["root", "sample-logger"]
  contexts = { root = "target:root" }
}

target "sample-logger" {
  context = "packages/logger"
  dockerfile = "Dockerfile.bake"
  tags = ["sample-logger:1.0.0"]
  depends_on = ["root"]
  contexts = { root = "target:root" }
}
`

func TestHCLCodec_Encode(t *testing.T) {
	c := bake.NewHCLCodec()
	assert.Equal(t, domain.FormatHCL, c.Format())

	out, err := c.Encode(sampleBakeFile())
	require.NoError(t, err)
	assert.Equal(t, sampleHCL, string(out))
}

func TestHCLCodec_Encode_Quoting(t *testing.T) {
	b := domain.NewBakeFile()
	b.Group[domain.DefaultGroupName] = domain.Group{Targets: []string{}}
	b.Target["odd"] = domain.Target{
		Context:    `dir with "quotes"`,
		Dockerfile: "Dockerfile.${env}",
		Tags:       []string{"odd:1"},
		Contexts:   map[string]string{"my.ctx": "target:root", "base": "docker-image://node:20"},
	}

	out, err := bake.NewHCLCodec().Encode(b)
	require.NoError(t, err)

	assert.Contains(t, string(out), "  targets = []\n")
	assert.Contains(t, string(out), `  context = "dir with \"quotes\""`)
	assert.Contains(t, string(out), `  dockerfile = "Dockerfile.$${env}"`)
	assert.Contains(t, string(out), `  contexts = { base = "docker-image://node:20", "my.ctx" = "target:root" }`)

	decoded, err := bake.NewHCLCodec().Decode(out)
	require.NoError(t, err)
	assert.True(t, b.Equal(decoded), "diff: %v", b.Diff(decoded))
}

func TestHCLCodec_RoundTrip(t *testing.T) {
	c := bake.NewHCLCodec()
	original := sampleBakeFile()

	out, err := c.Encode(original)
	require.NoError(t, err)

	decoded, err := c.Decode(out)
	require.NoError(t, err)
	assert.True(t, original.Equal(decoded), "diff: %v", original.Diff(decoded))
}

func TestHCLCodec_Decode_ToleratesForeignAttributes(t *testing.T) {
	src := `
variable "TAG" {
  default = "latest"
}

target "web" {
  context = "apps/web"
  dockerfile = "Dockerfile"
  tags = ["web:1"]
  platforms = ["linux/amd64"]
}
`
	decoded, err := bake.NewHCLCodec().Decode([]byte(src))
	require.NoError(t, err)
	require.Contains(t, decoded.Target, "web")
	assert.Equal(t, "apps/web", decoded.Target["web"].Context)
}

func TestHCLCodec_Decode_Invalid(t *testing.T) {
	_, err := bake.NewHCLCodec().Decode([]byte(`target "broken" {`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrBakeFileParse.Error())
}

func TestJSONCodec_Encode(t *testing.T) {
	c := bake.NewJSONCodec()
	assert.Equal(t, domain.FormatJSON, c.Format())

	b := domain.NewBakeFile()
	b.Group[domain.DefaultGroupName] = domain.Group{Targets: []string{}}
	b.Target[domain.RootTargetName] = domain.Target{
		Context:    ".",
		Dockerfile: domain.DefaultDockerfile,
		Tags:       []string{"lonely:0.1.0"},
		DependsOn:  []string{},
	}

	out, err := c.Encode(b)
	require.NoError(t, err)

	expected := `{
  "group": {
    "default": {
      "targets": []
    }
  },
  "target": {
    "root": {
      "context": ".",
      "dockerfile": "Dockerfile.bake",
      "tags": [
        "lonely:0.1.0"
      ],
      "depends_on": []
    }
  }
}
`
	assert.Equal(t, expected, string(out))
}

func TestJSONCodec_RoundTrip(t *testing.T) {
	c := bake.NewJSONCodec()
	original := sampleBakeFile()

	out, err := c.Encode(original)
	require.NoError(t, err)

	decoded, err := c.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestJSONCodec_Decode_Invalid(t *testing.T) {
	_, err := bake.NewJSONCodec().Decode([]byte(`{"target": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrBakeFileParse.Error())
}
