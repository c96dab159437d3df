package workspace_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bakehouse/internal/adapters/fs"
	"go.trai.ch/bakehouse/internal/adapters/logger"
	"go.trai.ch/bakehouse/internal/adapters/manifest"
	"go.trai.ch/bakehouse/internal/adapters/workspace"
	"go.trai.ch/bakehouse/internal/core/domain"
	"go.trai.ch/bakehouse/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func writeManifest(t *testing.T, dir, name string) {
	t.Helper()
	writeFile(t, filepath.Join(dir, "package.json"), `{"name": "`+name+`", "version": "1.0.0"}`)
}

func newScanner() *workspace.Scanner {
	return workspace.NewScanner(fs.NewWalker(), manifest.NewReader(), logger.NewWithWriter(io.Discard))
}

func memberNames(members []domain.Package) []string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}
	slices.Sort(names)
	return names
}

func TestScanner_Scan(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "sample-monorepo")
	writeManifest(t, filepath.Join(root, "apps", "api"), "@sample/api")
	writeManifest(t, filepath.Join(root, "apps", "admin"), "@sample/admin")
	writeManifest(t, filepath.Join(root, "packages", "logger"), "@sample/logger")
	writeManifest(t, filepath.Join(root, "packages", "logger", "fixtures"), "fixture")
	writeManifest(t, filepath.Join(root, "tools", "scripts"), "scripts")
	writeManifest(t, filepath.Join(root, "node_modules", "winston"), "winston")
	writeManifest(t, filepath.Join(root, ".cache", "pkg"), "cached")

	membership := domain.WorkspaceMembership{Patterns: []string{"./apps/*", "packages/*/", "node_modules/*"}}
	rootPkg, members, err := newScanner().Scan(context.Background(), root, membership, []string{"node_modules"})
	require.NoError(t, err)

	assert.Equal(t, domain.RootTargetName, rootPkg.Name)
	assert.Equal(t, "sample-monorepo", rootPkg.Manifest.Name)
	assert.Equal(t, []string{"sample-admin", "sample-api", "sample-logger"}, memberNames(members))

	for _, m := range members {
		assert.True(t, filepath.IsAbs(m.Path), "member path must be absolute: %s", m.Path)
	}
}

func TestScanner_Scan_Exclusions(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "root-pkg")
	writeManifest(t, filepath.Join(root, "packages", "core"), "core")
	writeManifest(t, filepath.Join(root, "packages", "core-test"), "core-test")

	membership := domain.WorkspaceMembership{Patterns: []string{"packages/**", "!packages/*-test"}}
	_, members, err := newScanner().Scan(context.Background(), root, membership, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"core"}, memberNames(members))
}

func TestScanner_Scan_RelativeRoot(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "root-pkg")
	writeManifest(t, filepath.Join(root, "apps", "web"), "web")

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	rootPkg, members, err := newScanner().Scan(context.Background(), ".", domain.WorkspaceMembership{Patterns: []string{"apps/*"}}, nil)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "apps/web", domain.ContextPath(rootPkg.Path, members[0].Path))
}

func TestScanner_Scan_RootOnly(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "lonely")

	rootPkg, members, err := newScanner().Scan(context.Background(), root, domain.WorkspaceMembership{Patterns: []string{"**"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "lonely", rootPkg.Manifest.Name)
	assert.Empty(t, members, "the root is never a member")
}

func TestScanner_Scan_Errors(t *testing.T) {
	t.Run("invalid glob", func(t *testing.T) {
		root := t.TempDir()
		writeManifest(t, root, "root-pkg")

		_, _, err := newScanner().Scan(context.Background(), root, domain.WorkspaceMembership{Patterns: []string{"apps/[a-"}}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrInvalidGlob.Error())
	})

	t.Run("broken member manifest", func(t *testing.T) {
		root := t.TempDir()
		writeManifest(t, root, "root-pkg")
		writeFile(t, filepath.Join(root, "apps", "api", "package.json"), `{"name": `)

		_, _, err := newScanner().Scan(context.Background(), root, domain.WorkspaceMembership{Patterns: []string{"apps/*"}}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrManifestParse.Error())
	})

	t.Run("missing root manifest", func(t *testing.T) {
		_, _, err := newScanner().Scan(context.Background(), t.TempDir(), domain.WorkspaceMembership{}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrManifestRead.Error())
	})

	t.Run("canceled", func(t *testing.T) {
		root := t.TempDir()
		writeManifest(t, root, "root-pkg")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, _, err := newScanner().Scan(ctx, root, domain.WorkspaceMembership{Patterns: []string{"*"}}, nil)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestPnpmResolver(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "sample-monorepo")
	writeFile(t, filepath.Join(root, "pnpm-workspace.yaml"), "packages:\n  - 'apps/*'\n")
	writeManifest(t, filepath.Join(root, "apps", "api"), "@sample/api")

	reader := manifest.NewReader()
	r := workspace.NewPnpmResolver(newScanner(), reader, logger.NewWithWriter(io.Discard))

	assert.Equal(t, "pnpm", r.Name())
	assert.True(t, r.Detect(root))
	assert.False(t, r.Detect(t.TempDir()))

	ws, err := r.Resolve(context.Background(), root, nil)
	require.NoError(t, err)
	assert.Equal(t, "pnpm", ws.PackageManager)
	assert.Equal(t, []string{"sample-api"}, memberNames(ws.Members))
}

func TestPnpmResolver_MissingMembership(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "sample-monorepo")

	r := workspace.NewPnpmResolver(newScanner(), manifest.NewReader(), logger.NewWithWriter(io.Discard))
	_, err := r.Resolve(context.Background(), root, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrMembershipRead.Error())
}

func TestNpmResolver(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"name": "npm-mono", "version": "2.0.0", "workspaces": ["libs/*"]}`)
	writeManifest(t, filepath.Join(root, "libs", "util"), "@npm/util")

	r := workspace.NewNpmResolver(newScanner(), manifest.NewReader(), logger.NewWithWriter(io.Discard))

	assert.Equal(t, "npm", r.Name())
	assert.True(t, r.Detect(root))

	plain := t.TempDir()
	writeManifest(t, plain, "plain")
	assert.False(t, r.Detect(plain))

	ws, err := r.Resolve(context.Background(), root, nil)
	require.NoError(t, err)
	assert.Equal(t, "npm", ws.PackageManager)
	assert.Equal(t, []string{"npm-util"}, memberNames(ws.Members))
}

func TestScanner_Scan_ConcurrentReads(t *testing.T) {
	root := t.TempDir()
	canonical, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	for _, name := range []string{"a", "b", "c", "d"} {
		writeManifest(t, filepath.Join(root, "pkgs", name), name)
	}

	ctrl := gomock.NewController(t)
	mockReader := mocks.NewMockManifestReader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	mockReader.EXPECT().ReadManifest(filepath.Join(canonical, "package.json")).
		Return(domain.PackageManifest{Name: "mono", Version: "1.0.0"}, nil)
	mockReader.EXPECT().ReadManifest(gomock.Any()).
		DoAndReturn(func(path string) (domain.PackageManifest, error) {
			name := filepath.Base(filepath.Dir(path))
			if name == "c" {
				return domain.PackageManifest{}, errors.New("permission denied")
			}
			return domain.PackageManifest{Name: "@mono/" + name, Version: "1.0.0"}, nil
		}).
		AnyTimes()

	scanner := workspace.NewScanner(fs.NewWalker(), mockReader, mockLogger)
	_, _, err = scanner.Scan(context.Background(), root, domain.WorkspaceMembership{Patterns: []string{"pkgs/*"}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestScanner_Scan_KeepsWalkOrder(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"d", "b", "a", "c"} {
		writeManifest(t, filepath.Join(root, "pkgs", name), name)
	}
	writeManifest(t, root, "mono")

	_, members, err := newScanner().Scan(context.Background(), root, domain.WorkspaceMembership{Patterns: []string{"pkgs/*"}}, nil)
	require.NoError(t, err)

	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, names)
}

func TestScanner_Scan_SymlinkAlias(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{name: "alias does not match", patterns: []string{"packages/*"}, want: []string{"logger"}},
		{name: "only alias matches", patterns: []string{"apps/*"}, want: []string{"logger"}},
		{name: "both spellings match", patterns: []string{"apps/*", "packages/*"}, want: []string{"logger"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			canonical, err := filepath.EvalSymlinks(root)
			require.NoError(t, err)
			writeManifest(t, root, "mono")
			writeManifest(t, filepath.Join(root, "packages", "logger"), "logger")
			require.NoError(t, os.MkdirAll(filepath.Join(root, "apps"), 0o750))
			// The alias sorts before the real directory.
			require.NoError(t, os.Symlink(
				filepath.Join(root, "packages", "logger"),
				filepath.Join(root, "apps", "logger-link"),
			))

			_, members, err := newScanner().Scan(context.Background(), root, domain.WorkspaceMembership{Patterns: tt.patterns}, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, memberNames(members))
			require.Len(t, members, 1)
			assert.Equal(t, filepath.Join(canonical, "packages", "logger"), members[0].Path)
		})
	}
}
