// Package config provides the configuration loader for bakehouse.
package config

import (
	"bytes"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.trai.ch/bakehouse/internal/core/domain"
	"go.trai.ch/bakehouse/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// YAMLFileName is the YAML configuration file looked up in the workspace root.
	YAMLFileName = ".bakehouse"
	// TOMLFileName is the TOML configuration file looked up in the workspace root.
	TOMLFileName = ".bakehouse.toml"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration of the workspace at root.
// The YAML file takes precedence when both files exist.
func (l *Loader) Load(root string) (domain.Config, error) {
	yamlPath := filepath.Join(root, YAMLFileName)
	tomlPath := filepath.Join(root, TOMLFileName)

	yamlData, yamlFound, err := readOptional(yamlPath)
	if err != nil {
		return domain.Config{}, err
	}
	tomlData, tomlFound, err := readOptional(tomlPath)
	if err != nil {
		return domain.Config{}, err
	}

	var file Bakehousefile
	switch {
	case yamlFound:
		if tomlFound {
			l.logger.Warn("both configuration files found, ignoring the TOML file", "used", YAMLFileName, "ignored", TOMLFileName)
		}
		if err := decodeYAML(yamlData, &file); err != nil {
			return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParse.Error()), "path", yamlPath)
		}
		l.logger.Debug("configuration loaded", "path", yamlPath)
	case tomlFound:
		if err := decodeTOML(tomlData, &file); err != nil {
			return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParse.Error()), "path", tomlPath)
		}
		l.logger.Debug("configuration loaded", "path", tomlPath)
	default:
		l.logger.Debug("no configuration file found, using defaults", "root", root)
	}

	return file.toDomain(), nil
}

func readOptional(path string) ([]byte, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the workspace root
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}
	return data, true, nil
}

func decodeYAML(data []byte, file *Bakehousefile) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(file); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func decodeTOML(data []byte, file *Bakehousefile) error {
	md, err := toml.Decode(string(data), file)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return zerr.With(zerr.New("unknown configuration keys"), "keys", strings.Join(keys, ", "))
	}
	return nil
}

// toDomain overlays the file onto the built-in defaults.
func (f *Bakehousefile) toDomain() domain.Config {
	cfg := domain.DefaultConfig()
	if f.OutputFormat != "" {
		cfg.OutputFormat = f.OutputFormat
	}
	if f.Output != "" {
		cfg.Output = f.Output
	}
	if f.Dockerfile != "" {
		cfg.Dockerfile = f.Dockerfile
	}
	if f.NodeVersion != "" {
		cfg.NodeVersion = f.NodeVersion
	}
	if f.Ignore != nil {
		cfg.Ignore = *f.Ignore
	}
	if len(f.Templates) > 0 {
		cfg.Templates = f.Templates
	}
	cfg.PackageManager = f.PackageManager
	cfg.RefreshStale = f.RefreshStale
	return cfg
}
