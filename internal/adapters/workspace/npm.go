package workspace

import (
	"context"
	"path/filepath"

	"go.trai.ch/bakehouse/internal/core/domain"
	"go.trai.ch/bakehouse/internal/core/ports"
)

// NpmName identifies the npm resolver.
const NpmName = "npm"

var _ ports.WorkspaceResolver = (*NpmResolver)(nil)

// NpmResolver resolves workspaces declared in the "workspaces" field of the
// root package.json.
type NpmResolver struct {
	scanner *Scanner
	reader  ports.ManifestReader
	logger  ports.Logger
}

// NewNpmResolver creates a new NpmResolver.
func NewNpmResolver(scanner *Scanner, reader ports.ManifestReader, logger ports.Logger) *NpmResolver {
	return &NpmResolver{scanner: scanner, reader: reader, logger: logger}
}

// Name returns "npm".
func (r *NpmResolver) Name() string {
	return NpmName
}

// Detect reports whether the root manifest declares workspaces.
func (r *NpmResolver) Detect(root string) bool {
	m, err := r.reader.ReadManifest(filepath.Join(root, domain.ManifestFileName))
	return err == nil && len(m.Workspaces) > 0
}

// Resolve scans the workspace using the root manifest's workspace globs.
func (r *NpmResolver) Resolve(ctx context.Context, root string, ignore []string) (*domain.Workspace, error) {
	m, err := r.reader.ReadManifest(filepath.Join(root, domain.ManifestFileName))
	if err != nil {
		return nil, err
	}
	membership := domain.WorkspaceMembership{Patterns: m.Workspaces}
	r.logger.Debug("workspace membership loaded", "package_manager", NpmName, "patterns", membership.Patterns)

	rootPkg, members, err := r.scanner.Scan(ctx, root, membership, ignore)
	if err != nil {
		return nil, err
	}

	return &domain.Workspace{
		Root:           rootPkg,
		Members:        members,
		PackageManager: NpmName,
	}, nil
}
