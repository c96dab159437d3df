package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/bakehouse/internal/core/domain"
	"go.trai.ch/bakehouse/internal/core/ports"
	"go.trai.ch/zerr"
)

// provisioner applies the provisions of a build plan to disk.
// The provenance store is opened on first use.
type provisioner struct {
	app     *App
	root    string
	refresh bool
	store   ports.ProvenanceStore
}

// provision makes sure every build-instruction file named by the plan exists.
// Existing files are never overwritten unless refresh is set and the file is
// an untouched, outdated product of an earlier run.
func (a *App) provision(ctx context.Context, root string, plan *domain.BuildPlan, refresh bool) error {
	p := &provisioner{app: a, root: root, refresh: refresh}
	for i := range plan.Provisions {
		req := &plan.Provisions[i]
		_, vertex := a.telemetry.Record(ctx, "dockerfile "+req.Target)
		written, err := p.apply(req)
		if err == nil && !written {
			vertex.Cached()
		}
		if err == nil && written {
			_, _ = fmt.Fprintln(vertex.Stdout(), domain.ContextPath(root, req.DockerfilePath()))
		}
		vertex.Complete(err)
		if err != nil {
			return err
		}
	}
	return nil
}

// apply reports whether the file was written.
func (p *provisioner) apply(req *domain.ProvisionRequest) (bool, error) {
	path := req.DockerfilePath()
	rel := domain.ContextPath(p.root, path)
	log := p.app.logger

	exists, err := p.app.files.Exists(path)
	if err != nil {
		return false, errors.Join(domain.ErrDockerfileWrite, zerr.With(err, "target", req.Target))
	}

	action := "dockerfile generated"
	if exists {
		if !p.refresh {
			log.Debug("dockerfile reused", "target", req.Target, "path", rel)
			return false, nil
		}
		stale, err := p.isStale(req, path, rel)
		if err != nil {
			return false, err
		}
		if !stale {
			return false, nil
		}
		action = "dockerfile refreshed"
	}

	content, err := p.app.provisioner.Generate(*req)
	if err != nil {
		return false, err
	}
	data := []byte(content)
	if err := p.app.files.WriteFile(path, data); err != nil {
		return false, errors.Join(domain.ErrDockerfileWrite, zerr.With(err, "target", req.Target))
	}

	store, err := p.openStore()
	if err != nil {
		return false, err
	}
	record := domain.Provenance{
		Target:      req.Target,
		Path:        rel,
		InputHash:   p.app.hasher.ComputeInputHash(*req),
		ContentHash: p.app.hasher.ComputeContentHash(data),
	}
	if err := store.Put(record); err != nil {
		return false, err
	}

	log.Info(action, "target", req.Target, "path", rel)
	return true, nil
}

// isStale reports whether an existing file was produced by an earlier run,
// is unmodified since, and was produced from different inputs.
func (p *provisioner) isStale(req *domain.ProvisionRequest, path, rel string) (bool, error) {
	log := p.app.logger

	store, err := p.openStore()
	if err != nil {
		return false, err
	}
	record, err := store.Get(req.Target)
	if err != nil {
		return false, err
	}
	if record == nil {
		log.Debug("dockerfile reused, no provenance recorded", "target", req.Target, "path", rel)
		return false, nil
	}

	data, err := p.app.files.ReadFile(path)
	if err != nil {
		return false, errors.Join(domain.ErrDockerfileWrite, zerr.With(err, "target", req.Target))
	}
	if p.app.hasher.ComputeContentHash(data) != record.ContentHash {
		log.Warn("dockerfile edited by hand, keeping it", "target", req.Target, "path", rel)
		return false, nil
	}
	if p.app.hasher.ComputeInputHash(*req) == record.InputHash {
		log.Debug("dockerfile up to date", "target", req.Target, "path", rel)
		return false, nil
	}
	return true, nil
}

func (p *provisioner) openStore() (ports.ProvenanceStore, error) {
	if p.store != nil {
		return p.store, nil
	}
	store, err := p.app.stores.Open(p.root)
	if err != nil {
		return nil, err
	}
	p.store = store
	return store, nil
}
