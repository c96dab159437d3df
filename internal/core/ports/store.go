package ports

import "go.trai.ch/bakehouse/internal/core/domain"

// ProvenanceStore stores provenance records for generated build-instruction files.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ProvenanceStore interface {
	// Get retrieves the provenance for a given target name.
	// Returns nil, nil if not found.
	Get(target string) (*domain.Provenance, error)

	// Put stores the provenance record.
	Put(p domain.Provenance) error
}

// ProvenanceStoreFactory opens the provenance store of a workspace.
type ProvenanceStoreFactory interface {
	// Open returns the store rooted at the given workspace directory.
	Open(root string) (ProvenanceStore, error)
}
