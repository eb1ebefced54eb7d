package domain

import (
	"fmt"
	"strings"
)

const (
	// DefaultExtension selects which files a bare `tunelint validate`
	// picks up from the data directory.
	DefaultExtension = ".jsonl"

	// DefaultDataDirName is resolved relative to the executable when the
	// config does not override it.
	DefaultDataDirName = "data"
)

// RunConfig holds tool configuration loaded from .tunelint.yaml.
type RunConfig struct {
	DataDir    string `yaml:"data_dir"    json:"data_dir,omitempty"`
	Extension  string `yaml:"extension"   json:"extension,omitempty"`
	MaxDefects int    `yaml:"max_defects" json:"max_defects,omitempty"`
	NoHints    bool   `yaml:"no_hints"    json:"no_hints,omitempty"`
}

// DefaultRunConfig returns the configuration used when no .tunelint.yaml
// exists. An empty DataDir means "data/ next to the executable".
func DefaultRunConfig() RunConfig {
	return RunConfig{Extension: DefaultExtension}
}

// Validate rejects configs that would silently match nothing.
func (c RunConfig) Validate() error {
	if c.Extension != "" && !strings.HasPrefix(c.Extension, ".") {
		return fmt.Errorf("extension %q must start with '.'", c.Extension)
	}
	if c.MaxDefects < 0 {
		return fmt.Errorf("max_defects must be >= 0, got %d", c.MaxDefects)
	}
	return nil
}
