package app

import (
	"context"
	"errors"
	"strings"

	"go.trai.ch/bakehouse/internal/core/domain"
	"go.trai.ch/zerr"
)

// Check computes the bake file that Generate would write and compares it to
// the one on disk. It writes nothing.
func (a *App) Check(ctx context.Context, opts GenerateOptions) error {
	r, err := a.prepare(ctx, opts)
	if err != nil {
		return err
	}

	exists, err := a.files.Exists(r.output)
	if err != nil {
		return errors.Join(domain.ErrBakeFileRead, zerr.With(err, "path", r.output))
	}
	if !exists {
		detail := zerr.With(zerr.New("bake file does not exist"), "path", r.output)
		return errors.Join(domain.ErrBakeFileDrift, detail)
	}

	data, err := a.files.ReadFile(r.output)
	if err != nil {
		return errors.Join(domain.ErrBakeFileRead, zerr.With(err, "path", r.output))
	}
	current, err := r.codec.Decode(data)
	if err != nil {
		return zerr.With(err, "path", r.output)
	}

	if diff := r.plan.BakeFile.Diff(current); len(diff) > 0 {
		for _, key := range diff {
			a.logger.Warn("bake file entry differs", "key", key)
		}
		detail := zerr.With(zerr.New(strings.Join(diff, ", ")), "path", r.output)
		return errors.Join(domain.ErrBakeFileDrift, detail)
	}

	for i := range r.plan.Provisions {
		req := &r.plan.Provisions[i]
		ok, err := a.files.Exists(req.DockerfilePath())
		if err != nil {
			return errors.Join(domain.ErrBakeFileRead, zerr.With(err, "target", req.Target))
		}
		if !ok {
			a.logger.Warn("dockerfile missing, run generate to create it",
				"target", req.Target,
				"path", domain.ContextPath(r.root, req.DockerfilePath()),
			)
		}
	}

	a.logger.Info("bake file is up to date", "path", r.output)
	return nil
}
