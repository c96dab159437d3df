// Package manifest reads package manifests and workspace membership files.
package manifest

import (
	"encoding/json"
	"os"

	"go.trai.ch/bakehouse/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Reader implements ports.ManifestReader.
type Reader struct{}

// NewReader creates a new manifest Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadManifest parses the package.json at path.
func (r *Reader) ReadManifest(path string) (domain.PackageManifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the workspace scan
	if err != nil {
		return domain.PackageManifest{}, zerr.With(zerr.Wrap(err, domain.ErrManifestRead.Error()), "path", path)
	}

	var dto packageJSON
	if err := json.Unmarshal(data, &dto); err != nil {
		return domain.PackageManifest{}, zerr.With(zerr.Wrap(err, domain.ErrManifestParse.Error()), "path", path)
	}

	switch {
	case dto.Name == nil:
		return domain.PackageManifest{}, zerr.With(zerr.With(domain.ErrManifestParse, "path", path), "missing_field", "name")
	case dto.Version == nil:
		return domain.PackageManifest{}, zerr.With(zerr.With(domain.ErrManifestParse, "path", path), "missing_field", "version")
	}

	m := domain.PackageManifest{
		Name:            *dto.Name,
		Version:         *dto.Version,
		Dependencies:    dto.Dependencies,
		DevDependencies: dto.DevDependencies,
		Workspaces:      dto.Workspaces,
	}
	if dto.Engines != nil {
		m.NodeVersion = dto.Engines.Node
	}
	return m, nil
}

// ReadMembership parses the pnpm-workspace.yaml at path.
func (r *Reader) ReadMembership(path string) (domain.WorkspaceMembership, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the workspace root
	if err != nil {
		return domain.WorkspaceMembership{}, zerr.With(zerr.Wrap(err, domain.ErrMembershipRead.Error()), "path", path)
	}

	var ws pnpmWorkspace
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return domain.WorkspaceMembership{}, zerr.With(zerr.Wrap(err, domain.ErrMembershipParse.Error()), "path", path)
	}

	return domain.WorkspaceMembership{Patterns: ws.Packages}, nil
}
