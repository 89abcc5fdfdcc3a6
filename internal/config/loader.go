package config

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/XiFenM/encoding-fixer/internal/comparison"
	"github.com/XiFenM/encoding-fixer/internal/safefileio"
)

// Error definitions for the config package
var (
	// ErrInvalidConfigPath is returned when the config file path is empty
	ErrInvalidConfigPath = errors.New("invalid config file path")

	// ErrUnknownAlgorithm is returned when comparison.algorithm names no
	// known fingerprint algorithm
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")
)

// Loader reads and validates configuration files.
type Loader struct{}

// NewLoader creates a new config loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the TOML file at path and merges it over the defaults.
// Symlinked config files are rejected.
func (l *Loader) Load(path string) (*Config, error) {
	if path == "" {
		return nil, ErrInvalidConfigPath
	}

	content, err := safefileio.SafeReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return l.Parse(content)
}

// Parse decodes TOML content over the defaults and validates the result.
func (l *Loader) Parse(content []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if _, ok := comparison.AlgorithmByName(cfg.Comparison.Algorithm); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, cfg.Comparison.Algorithm)
	}
	return nil
}
