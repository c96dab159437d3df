package ports

import (
	"context"

	"go.trai.ch/bakehouse/internal/core/domain"
)

// WorkspaceResolver discovers the packages of one package-manager ecosystem.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace_resolver.go -destination=mocks/mock_workspace_resolver.go -package=mocks
type WorkspaceResolver interface {
	// Name returns the package manager identifier, e.g. "pnpm".
	Name() string

	// Detect reports whether the workspace at root is managed by this resolver.
	Detect(root string) bool

	// Resolve scans the workspace at root and returns its root and member packages.
	// Directories named in ignore are never entered.
	Resolve(ctx context.Context, root string, ignore []string) (*domain.Workspace, error)
}
