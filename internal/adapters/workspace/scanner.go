// Package workspace discovers the packages of a JavaScript workspace.
package workspace

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/bakehouse/internal/adapters/fs"
	"go.trai.ch/bakehouse/internal/core/domain"
	"go.trai.ch/bakehouse/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Scanner walks a workspace tree and collects the packages selected by
// membership globs.
type Scanner struct {
	walker *fs.Walker
	reader ports.ManifestReader
	logger ports.Logger
}

// NewScanner creates a new Scanner.
func NewScanner(walker *fs.Walker, reader ports.ManifestReader, logger ports.Logger) *Scanner {
	return &Scanner{
		walker: walker,
		reader: reader,
		logger: logger,
	}
}

// matcher holds the normalized inclusion and exclusion globs of a membership.
type matcher struct {
	include []string
	exclude []string
}

func newMatcher(membership domain.WorkspaceMembership) (*matcher, error) {
	m := &matcher{}
	for _, raw := range membership.Patterns {
		pattern, negated := normalizePattern(raw)
		if pattern == "" {
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			return nil, zerr.With(domain.ErrInvalidGlob, "pattern", raw)
		}
		if negated {
			m.exclude = append(m.exclude, pattern)
		} else {
			m.include = append(m.include, pattern)
		}
	}
	return m, nil
}

func normalizePattern(raw string) (string, bool) {
	pattern := strings.TrimSpace(raw)
	negated := strings.HasPrefix(pattern, "!")
	pattern = strings.TrimPrefix(pattern, "!")
	for strings.HasPrefix(pattern, "./") {
		pattern = strings.TrimPrefix(pattern, "./")
	}
	pattern = strings.TrimRight(pattern, "/")
	return pattern, negated
}

func (m *matcher) matches(rel string) bool {
	match := func(pattern string) bool {
		ok, _ := doublestar.Match(pattern, rel)
		return ok
	}
	return slices.ContainsFunc(m.include, match) && !slices.ContainsFunc(m.exclude, match)
}

// Scan reads the root manifest of the workspace at root and every member
// package selected by membership. Directories named in ignore are skipped.
// Members are returned in walk order.
func (s *Scanner) Scan(
	ctx context.Context,
	root string,
	membership domain.WorkspaceMembership,
	ignore []string,
) (domain.Package, []domain.Package, error) {
	m, err := newMatcher(membership)
	if err != nil {
		return domain.Package{}, nil, err
	}

	root, err = canonicalRoot(root)
	if err != nil {
		return domain.Package{}, nil, err
	}

	rootManifest, err := s.reader.ReadManifest(filepath.Join(root, domain.ManifestFileName))
	if err != nil {
		return domain.Package{}, nil, err
	}
	rootPkg := domain.Package{
		Name:     domain.RootTargetName,
		Path:     root,
		Manifest: rootManifest,
	}

	// A directory is a member if any of its spellings matches. Members are
	// keyed by canonical path.
	var candidates []string
	seen := make(map[string]struct{})
	for dir, err := range s.walker.WalkDirs(root, ignore) {
		if err != nil {
			return domain.Package{}, nil, zerr.Wrap(err, "failed to walk workspace")
		}
		if err := ctx.Err(); err != nil {
			return domain.Package{}, nil, err
		}
		if dir == root || !hasManifest(dir) {
			continue
		}

		rel := domain.ContextPath(root, dir)
		if !m.matches(rel) {
			s.logger.Debug("candidate skipped", "path", rel)
			continue
		}
		canonical, err := filepath.EvalSymlinks(dir)
		if err != nil {
			return domain.Package{}, nil, zerr.With(zerr.Wrap(err, "failed to resolve member path"), "path", rel)
		}
		if canonical == root {
			continue
		}
		if _, ok := seen[canonical]; ok {
			continue
		}
		seen[canonical] = struct{}{}
		candidates = append(candidates, canonical)
	}

	members, err := s.readMembers(ctx, root, candidates)
	if err != nil {
		return domain.Package{}, nil, err
	}

	return rootPkg, members, nil
}

// readMembers reads the manifests of the selected directories concurrently.
// The result keeps the order of dirs.
func (s *Scanner) readMembers(ctx context.Context, root string, dirs []string) ([]domain.Package, error) {
	members := make([]domain.Package, len(dirs))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, dir := range dirs {
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			manifest, err := s.reader.ReadManifest(filepath.Join(dir, domain.ManifestFileName))
			if err != nil {
				return err
			}
			members[i] = domain.Package{
				Name:     domain.Sanitize(manifest.Name),
				Path:     dir,
				Manifest: manifest,
			}
			s.logger.Debug("member added", "target", members[i].Name, "path", domain.ContextPath(root, dir))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return members, nil
}

func canonicalRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve workspace root"), "path", root)
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve workspace root"), "path", root)
	}
	return canonical, nil
}

func hasManifest(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, domain.ManifestFileName))
	return err == nil && info.Mode().IsRegular()
}
