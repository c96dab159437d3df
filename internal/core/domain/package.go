package domain

import (
	"path/filepath"
	"strings"
)

// Package is a discovered workspace unit.
type Package struct {
	// Name is the build-target name. It is RootTargetName for the root
	// package and Sanitize(Manifest.Name) for every member.
	Name string

	// Path is the canonical absolute directory containing the manifest.
	Path string

	// Manifest is the parsed package.json of the package.
	Manifest PackageManifest

	// Dependencies holds the resolved target names this package depends on.
	// It is empty until the package has been resolved into a DependencyGraph.
	Dependencies []string
}

// ManifestName returns the name declared in the package manifest.
func (p *Package) ManifestName() string {
	return p.Manifest.Name
}

// Version returns the version declared in the package manifest.
func (p *Package) Version() string {
	return p.Manifest.Version
}

// ImageName returns the sanitized manifest name used for image tags.
func (p *Package) ImageName() string {
	return Sanitize(p.Manifest.Name)
}

// Tag returns the image tag "<sanitized-name>:<version>".
func (p *Package) Tag() string {
	return p.ImageName() + ":" + p.Manifest.Version
}

// IsRoot reports whether p is the workspace root package.
func (p *Package) IsRoot() bool {
	return p.Name == RootTargetName
}

// Workspace is the uniform discovery result produced by every WorkspaceResolver.
type Workspace struct {
	// Root is the workspace's own package; its Name is always RootTargetName.
	Root Package

	// Members are the discovered member packages, in no guaranteed order.
	Members []Package

	// PackageManager names the resolver that produced the workspace (e.g. "pnpm").
	PackageManager string
}

// ContextPath returns pkgPath relative to root in POSIX form with no leading "./".
// The root itself maps to ".". Relative inputs are resolved against the process
// working directory first, so mixing absolute and relative spellings is safe.
func ContextPath(root, pkgPath string) string {
	if filepath.IsAbs(root) != filepath.IsAbs(pkgPath) {
		if abs, err := filepath.Abs(root); err == nil {
			root = abs
		}
		if abs, err := filepath.Abs(pkgPath); err == nil {
			pkgPath = abs
		}
	}

	rel, err := filepath.Rel(root, pkgPath)
	if err != nil {
		rel = pkgPath
	}

	rel = filepath.ToSlash(rel)
	for strings.HasPrefix(rel, "./") {
		rel = strings.TrimPrefix(rel, "./")
	}
	if rel == "" {
		return "."
	}
	return rel
}
