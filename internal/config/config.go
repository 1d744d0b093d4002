package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// DefaultConfigFile is looked up in the working directory.
const DefaultConfigFile = ".getver.yaml"

// EnvConfigFile overrides the config file location.
const EnvConfigFile = "GETVER_CONFIG"

// Config holds defaults for flags that were not given on the command line.
// The manifest path is deliberately absent: it must always be passed.
type Config struct {
	Field  string `yaml:"field,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Loader produces the configuration. It is called only once the manifest
// path is known, so a broken config never masks a usage error.
type Loader func() (*Config, error)

// LoadConfigFn is the loader used by main. Tests swap it out.
var LoadConfigFn Loader = loadConfig

func loadConfig() (*Config, error) {
	path := DefaultConfigFile
	explicit := false
	if envPath := os.Getenv(EnvConfigFile); envPath != "" {
		cleanPath := filepath.Clean(envPath)
		if strings.Contains(cleanPath, "..") {
			return nil, fmt.Errorf("invalid %s: path traversal not allowed, use absolute path instead", EnvConfigFile)
		}
		path = cleanPath
		explicit = true
	}

	cfg, err := LoadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil // fallback to defaults
		}
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes the YAML config at path. Unknown keys are rejected.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}

	return &cfg, nil
}
