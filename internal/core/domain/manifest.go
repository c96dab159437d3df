package domain

import "slices"

// ManifestFileName is the per-package manifest file looked for during scanning.
const ManifestFileName = "package.json"

// PackageManifest is the identity record parsed from a single package.json.
type PackageManifest struct {
	// Name is the manifest package name, possibly scoped (e.g. "@sample/api").
	Name string

	// Version is the declared package version.
	Version string

	// Dependencies maps runtime dependency names to version ranges.
	Dependencies map[string]string

	// DevDependencies maps development dependency names to version ranges.
	DevDependencies map[string]string

	// NodeVersion is the optional engines.node hint.
	NodeVersion string

	// Workspaces holds npm-style membership globs declared on a root manifest.
	Workspaces []string
}

// DependencyNames returns the sorted union of runtime and development dependency names.
func (m *PackageManifest) DependencyNames() []string {
	names := make([]string, 0, len(m.Dependencies)+len(m.DevDependencies))
	for name := range m.Dependencies {
		names = append(names, name)
	}
	for name := range m.DevDependencies {
		names = append(names, name)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// WorkspaceMembership is the ordered list of glob patterns selecting member packages.
type WorkspaceMembership struct {
	Patterns []string
}
