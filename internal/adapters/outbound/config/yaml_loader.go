package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdidvp/pushkraft/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file read from the project root.
const FileName = ".pushkraft.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .pushkraft.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .pushkraft.yaml from projectPath.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(projectPath string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return mergeConfig(domain.DefaultConfig(), cfg), nil
}

// Marshal renders cfg as the YAML written by `pushkraft init`.
func Marshal(cfg domain.ProjectConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// mergeConfig overlays explicit values on top of defaults.
func mergeConfig(base, override domain.ProjectConfig) domain.ProjectConfig {
	result := override
	if result.ScanMode == "" {
		result.ScanMode = base.ScanMode
	}
	return result
}
