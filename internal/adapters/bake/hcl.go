package bake

import (
	"bytes"
	"maps"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"go.trai.ch/bakehouse/internal/core/domain"
	"go.trai.ch/bakehouse/internal/core/ports"
	"go.trai.ch/zerr"
)

const hclFileName = "docker-bake.hcl"

var _ ports.BakeCodec = (*HCLCodec)(nil)

// HCLCodec implements the block encoding.
//
// Output grammar:
//
//	group "<name>" {
//	  targets = ["a", "b"]
//	}
//
//	target "<name>" {
//	  context = "..."
//	  dockerfile = "..."
//	  tags = ["..."]
//	  depends_on = ["..."]
//	  contexts = { k = "v" }
//	}
//
// Groups come first in name order, then the root target, then the remaining
// targets in name order. Empty depends_on and contexts are omitted.
type HCLCodec struct{}

// NewHCLCodec creates a new HCLCodec.
func NewHCLCodec() *HCLCodec {
	return &HCLCodec{}
}

// Format returns domain.FormatHCL.
func (c *HCLCodec) Format() domain.Format {
	return domain.FormatHCL
}

// Encode serializes bake in the block encoding.
func (c *HCLCodec) Encode(bake *domain.BakeFile) ([]byte, error) {
	var buf bytes.Buffer
	blocks := 0
	separate := func() {
		if blocks > 0 {
			buf.WriteString("\n")
		}
		blocks++
	}

	for _, name := range bake.GroupNames() {
		separate()
		buf.WriteString("group " + quote(name) + " {\n")
		buf.WriteString("  targets = " + list(bake.Group[name].Targets) + "\n")
		buf.WriteString("}\n")
	}

	for _, name := range bake.TargetNames() {
		t := bake.Target[name]
		separate()
		buf.WriteString("target " + quote(name) + " {\n")
		buf.WriteString("  context = " + quote(t.Context) + "\n")
		buf.WriteString("  dockerfile = " + quote(t.Dockerfile) + "\n")
		buf.WriteString("  tags = " + list(t.Tags) + "\n")
		if len(t.DependsOn) > 0 {
			buf.WriteString("  depends_on = " + list(t.DependsOn) + "\n")
		}
		if len(t.Contexts) > 0 {
			buf.WriteString("  contexts = " + object(t.Contexts) + "\n")
		}
		buf.WriteString("}\n")
	}

	return buf.Bytes(), nil
}

// quote returns s as an HCL string literal.
func quote(s string) string {
	return string(hclwrite.TokensForValue(cty.StringVal(s)).Bytes())
}

func list(items []string) string {
	quoted := make([]string, 0, len(items))
	for _, item := range items {
		quoted = append(quoted, quote(item))
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func object(m map[string]string) string {
	pairs := make([]string, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		key := k
		if !hclsyntax.ValidIdentifier(k) {
			key = quote(k)
		}
		pairs = append(pairs, key+" = "+quote(m[k]))
	}
	return "{ " + strings.Join(pairs, ", ") + " }"
}

// Attributes and blocks bakehouse does not generate are tolerated on decode.
type hclBakeFile struct {
	Groups  []hclGroup  `hcl:"group,block"`
	Targets []hclTarget `hcl:"target,block"`
	Remain  hcl.Body    `hcl:",remain"`
}

type hclGroup struct {
	Name    string   `hcl:"name,label"`
	Targets []string `hcl:"targets,optional"`
}

type hclTarget struct {
	Name       string            `hcl:"name,label"`
	Context    string            `hcl:"context,optional"`
	Dockerfile string            `hcl:"dockerfile,optional"`
	Tags       []string          `hcl:"tags,optional"`
	DependsOn  []string          `hcl:"depends_on,optional"`
	Contexts   map[string]string `hcl:"contexts,optional"`
	Remain     hcl.Body          `hcl:",remain"`
}

// Decode parses a block encoded bake file.
func (c *HCLCodec) Decode(data []byte) (*domain.BakeFile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, hclFileName)
	if diags.HasErrors() {
		return nil, zerr.With(zerr.Wrap(diags, domain.ErrBakeFileParse.Error()), "format", domain.FormatHCL.String())
	}

	var parsed hclBakeFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, zerr.With(zerr.Wrap(diags, domain.ErrBakeFileParse.Error()), "format", domain.FormatHCL.String())
	}

	bake := domain.NewBakeFile()
	for _, g := range parsed.Groups {
		bake.Group[g.Name] = domain.Group{Targets: g.Targets}
	}
	for _, t := range parsed.Targets {
		bake.Target[t.Name] = domain.Target{
			Context:    t.Context,
			Dockerfile: t.Dockerfile,
			Tags:       t.Tags,
			DependsOn:  t.DependsOn,
			Contexts:   t.Contexts,
		}
	}
	return bake, nil
}
