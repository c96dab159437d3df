package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestRead is returned when a package manifest cannot be read from disk.
	ErrManifestRead = zerr.New("failed to read package manifest")

	// ErrManifestParse is returned when a package manifest does not have the expected shape.
	ErrManifestParse = zerr.New("failed to parse package manifest")

	// ErrMembershipRead is returned when the workspace membership file cannot be read.
	ErrMembershipRead = zerr.New("failed to read workspace membership file")

	// ErrMembershipParse is returned when the workspace membership file does not have the expected shape.
	ErrMembershipParse = zerr.New("failed to parse workspace membership file")

	// ErrInvalidGlob is returned when a membership pattern is not a valid glob.
	ErrInvalidGlob = zerr.New("invalid workspace glob pattern")

	// ErrUnsupportedFormat is returned when the requested output format is neither hcl nor json.
	ErrUnsupportedFormat = zerr.New("unsupported output format")

	// ErrCycleDetected is returned when the workspace dependency graph contains a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrNameCollision is returned when two packages sanitize to the same target name.
	ErrNameCollision = zerr.New("target name collision")

	// ErrUnknownTarget is returned when an edge references a target that is not in the graph.
	ErrUnknownTarget = zerr.New("unknown target")

	// ErrDockerfileWrite is returned when a generated build-instruction file cannot be written.
	ErrDockerfileWrite = zerr.New("failed to write build-instruction file")

	// ErrOutputWrite is returned when the bake file cannot be written.
	ErrOutputWrite = zerr.New("failed to write bake file")

	// ErrConfigParse is returned when the bakehouse config file is malformed.
	ErrConfigParse = zerr.New("failed to parse bakehouse config")

	// ErrTemplateRender is returned when a Dockerfile template cannot be loaded or rendered.
	ErrTemplateRender = zerr.New("failed to render Dockerfile template")

	// ErrBakeFileRead is returned when an existing bake file cannot be read.
	ErrBakeFileRead = zerr.New("failed to read bake file")

	// ErrBakeFileParse is returned when an existing bake file cannot be decoded.
	ErrBakeFileParse = zerr.New("failed to parse bake file")

	// ErrBakeFileDrift is returned by check when the bake file on disk differs from the computed plan.
	ErrBakeFileDrift = zerr.New("bake file is out of date")

	// ErrStateStore is returned when the provenance state file cannot be read or written.
	ErrStateStore = zerr.New("failed to access provenance state")

	// ErrUnknownPackageManager is returned when the configured package manager has no resolver.
	ErrUnknownPackageManager = zerr.New("unknown package manager")
)
