package config

// Bakehousefile represents the structure of the .bakehouse configuration file.
// Ignore is a pointer so an absent key keeps the default ignore list.
type Bakehousefile struct {
	OutputFormat   string            `yaml:"output_format"   toml:"output_format"`
	Output         string            `yaml:"output"          toml:"output"`
	Dockerfile     string            `yaml:"dockerfile"      toml:"dockerfile"`
	PackageManager string            `yaml:"package_manager" toml:"package_manager"`
	NodeVersion    string            `yaml:"node_version"    toml:"node_version"`
	Ignore         *[]string         `yaml:"ignore"          toml:"ignore"`
	RefreshStale   bool              `yaml:"refresh_stale"   toml:"refresh_stale"`
	Templates      map[string]string `yaml:"templates"       toml:"templates"`
}
