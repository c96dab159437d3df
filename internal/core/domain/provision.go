package domain

import "path/filepath"

// ProvisionRequest carries everything needed to produce the build-instruction
// file of a single package.
type ProvisionRequest struct {
	// Target is the build-target name of the package.
	Target string

	// ManifestName is the unsanitized package name.
	ManifestName string

	// Path is the absolute package directory.
	Path string

	// Context is the package directory relative to the workspace root.
	Context string

	// Dockerfile is the build-instruction file name inside Path.
	Dockerfile string

	// NodeVersion is the resolved runtime version (e.g. "20" or "lts").
	NodeVersion string

	// Dependencies are the resolved target names the package depends on.
	Dependencies []string

	// PackageManager is the workspace tool ("pnpm" or "npm").
	PackageManager string

	// Template is an absolute path to a custom template, or empty for the built-in one.
	Template string

	// Root is set for the workspace root package.
	Root bool
}

// DockerfilePath returns the absolute location of the build-instruction file.
func (r *ProvisionRequest) DockerfilePath() string {
	return filepath.Join(r.Path, r.Dockerfile)
}

// Provenance records how a generated build-instruction file was produced.
type Provenance struct {
	Target      string `json:"target"`
	Path        string `json:"path"`
	InputHash   string `json:"input_hash"`
	ContentHash string `json:"content_hash"`
}

// BuildPlan is the pure result of planning: the bake file to emit and the
// build-instruction files that must exist before it is usable.
type BuildPlan struct {
	BakeFile   *BakeFile
	Provisions []ProvisionRequest
}
