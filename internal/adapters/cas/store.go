// Package cas implements the provenance store for generated build-instruction files.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/bakehouse/internal/core/domain"
	"go.trai.ch/bakehouse/internal/core/ports"
	"go.trai.ch/zerr"
)

// StateFileName is the provenance file inside domain.StateDir.
const StateFileName = "state.json"

var _ ports.ProvenanceStore = (*Store)(nil)

// Store implements ports.ProvenanceStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.Provenance
}

// NewStore creates a new ProvenanceStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.Provenance),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrStateStore.Error()), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStateStore.Error()), "path", s.path)
	}

	return nil
}

func (s *Store) save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.cache, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return zerr.Wrap(err, "failed to marshal provenance state")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStateStore.Error()), "path", dir)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, append(data, '\n'), 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStateStore.Error()), "path", s.path)
	}

	return nil
}

// Get retrieves the provenance for a given target name.
func (s *Store) Get(target string) (*domain.Provenance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.cache[target]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// Put stores the provenance record.
func (s *Store) Put(p domain.Provenance) error {
	// Update cache first
	s.mu.Lock()
	s.cache[p.Target] = p
	s.mu.Unlock()

	// Then save to disk
	return s.save()
}

var _ ports.ProvenanceStoreFactory = (*Factory)(nil)

// Factory opens the provenance store of a workspace.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Open returns the store kept at <root>/.cache/bakehouse/state.json.
func (f *Factory) Open(root string) (ports.ProvenanceStore, error) {
	return NewStore(filepath.Join(root, domain.StateDir, StateFileName))
}
