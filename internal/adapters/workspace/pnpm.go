package workspace

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/bakehouse/internal/core/domain"
	"go.trai.ch/bakehouse/internal/core/ports"
)

const (
	// PnpmName identifies the pnpm resolver.
	PnpmName = "pnpm"
	// PnpmMembershipFile is the pnpm workspace membership file.
	PnpmMembershipFile = "pnpm-workspace.yaml"
)

var _ ports.WorkspaceResolver = (*PnpmResolver)(nil)

// PnpmResolver resolves workspaces declared in pnpm-workspace.yaml.
type PnpmResolver struct {
	scanner *Scanner
	reader  ports.ManifestReader
	logger  ports.Logger
}

// NewPnpmResolver creates a new PnpmResolver.
func NewPnpmResolver(scanner *Scanner, reader ports.ManifestReader, logger ports.Logger) *PnpmResolver {
	return &PnpmResolver{scanner: scanner, reader: reader, logger: logger}
}

// Name returns "pnpm".
func (r *PnpmResolver) Name() string {
	return PnpmName
}

// Detect reports whether root contains a pnpm-workspace.yaml file.
func (r *PnpmResolver) Detect(root string) bool {
	info, err := os.Stat(filepath.Join(root, PnpmMembershipFile))
	return err == nil && !info.IsDir()
}

// Resolve reads the membership file and scans the workspace.
func (r *PnpmResolver) Resolve(ctx context.Context, root string, ignore []string) (*domain.Workspace, error) {
	membership, err := r.reader.ReadMembership(filepath.Join(root, PnpmMembershipFile))
	if err != nil {
		return nil, err
	}
	r.logger.Debug("workspace membership loaded", "package_manager", PnpmName, "patterns", membership.Patterns)

	rootPkg, members, err := r.scanner.Scan(ctx, root, membership, ignore)
	if err != nil {
		return nil, err
	}

	return &domain.Workspace{
		Root:           rootPkg,
		Members:        members,
		PackageManager: PnpmName,
	}, nil
}
