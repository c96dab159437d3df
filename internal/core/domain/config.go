package domain

const (
	// DefaultOutput is the bake file written when no output is configured.
	DefaultOutput = "docker-bake.hcl"

	// DefaultDockerfile is the build-instruction file name used for every target.
	DefaultDockerfile = "Dockerfile.bake"

	// DefaultNodeVersion is the runtime version used when no manifest declares one.
	DefaultNodeVersion = "lts"

	// StateDir is the workspace-relative directory holding bakehouse state.
	StateDir = ".cache/bakehouse"
)

// Config holds the effective bakehouse settings for one workspace.
type Config struct {
	// OutputFormat is the bake file encoding ("hcl" or "json").
	OutputFormat string

	// Output is the bake file path, relative to the workspace root unless absolute.
	Output string

	// Dockerfile is the build-instruction file name.
	Dockerfile string

	// PackageManager forces a workspace resolver. Empty means auto-detect.
	PackageManager string

	// NodeVersion is the fallback runtime version.
	NodeVersion string

	// Ignore lists directory names the scanner never enters.
	Ignore []string

	// RefreshStale enables regeneration of stale build-instruction files
	// that bakehouse generated itself.
	RefreshStale bool

	// Templates maps package context globs to template paths.
	Templates map[string]string
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		OutputFormat: string(FormatHCL),
		Output:       DefaultOutput,
		Dockerfile:   DefaultDockerfile,
		NodeVersion:  DefaultNodeVersion,
		Ignore:       []string{"node_modules"},
		Templates:    map[string]string{},
	}
}
