package ports

import "go.trai.ch/bakehouse/internal/core/domain"

// ManifestReader parses package manifests and workspace membership files.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_reader.go -destination=mocks/mock_manifest_reader.go -package=mocks
type ManifestReader interface {
	// ReadManifest parses the package.json at path.
	ReadManifest(path string) (domain.PackageManifest, error)

	// ReadMembership parses the workspace membership file at path.
	ReadMembership(path string) (domain.WorkspaceMembership, error)
}
