package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tunelint/tunelint/internal/domain"
)

const fileName = ".tunelint.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .tunelint.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .tunelint.yaml from dir.
// Returns DefaultRunConfig if the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.RunConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultRunConfig(), nil
		}
		return domain.RunConfig{}, err
	}

	cfg := domain.DefaultRunConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.RunConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.RunConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	// An explicit empty extension falls back to the default rather than
	// matching every file in the data directory.
	if cfg.Extension == "" {
		cfg.Extension = domain.DefaultExtension
	}

	return cfg, nil
}
