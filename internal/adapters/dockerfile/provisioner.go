// Package dockerfile renders build-instruction files from text/template sources.
package dockerfile

import (
	"bytes"
	"embed"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"go.trai.ch/bakehouse/internal/core/domain"
	"go.trai.ch/bakehouse/internal/core/ports"
	"go.trai.ch/zerr"
)

//go:embed templates/*.tmpl
var builtin embed.FS

var funcs = template.FuncMap{
	"join": strings.Join,
}

var _ ports.DockerfileProvisioner = (*Provisioner)(nil)

// Provisioner implements ports.DockerfileProvisioner.
type Provisioner struct {
	root   *template.Template
	member *template.Template
	logger ports.Logger
}

// templateData is the value templates are executed against.
type templateData struct {
	Target         string
	ManifestName   string
	Context        string
	NodeVersion    string
	PackageManager string
	Dependencies   []string
	Root           bool
}

// NewProvisioner creates a Provisioner with the built-in templates loaded.
func NewProvisioner(logger ports.Logger) *Provisioner {
	return &Provisioner{
		root:   template.Must(template.New("root").Funcs(funcs).ParseFS(builtin, "templates/root.Dockerfile.tmpl")),
		member: template.Must(template.New("member").Funcs(funcs).ParseFS(builtin, "templates/member.Dockerfile.tmpl")),
		logger: logger,
	}
}

// Generate renders the build-instruction file for req.
func (p *Provisioner) Generate(req domain.ProvisionRequest) (string, error) {
	tmpl, err := p.template(req)
	if err != nil {
		return "", err
	}

	data := templateData{
		Target:         req.Target,
		ManifestName:   req.ManifestName,
		Context:        req.Context,
		NodeVersion:    req.NodeVersion,
		PackageManager: req.PackageManager,
		Dependencies:   req.Dependencies,
		Root:           req.Root,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrTemplateRender.Error()), "target", req.Target)
	}
	return buf.String(), nil
}

func (p *Provisioner) template(req domain.ProvisionRequest) (*template.Template, error) {
	if req.Template == "" {
		if req.Root {
			return p.root.Lookup("root.Dockerfile.tmpl"), nil
		}
		return p.member.Lookup("member.Dockerfile.tmpl"), nil
	}

	content, err := os.ReadFile(req.Template) //nolint:gosec // template paths come from the workspace config
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTemplateRender.Error()), "template", req.Template)
	}
	tmpl, err := template.New(filepath.Base(req.Template)).Funcs(funcs).Parse(string(content))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTemplateRender.Error()), "template", req.Template)
	}
	p.logger.Debug("using custom template", "target", req.Target, "template", req.Template)
	return tmpl, nil
}
