package domain

import "fmt"

// ScanMode selects how the analysis compositor runs scanners.
type ScanMode string

const (
	// ScanConcurrent launches every eligible scanner at once. Each scanner
	// sees the pre-merge Analysis, never another scanner's element.
	ScanConcurrent ScanMode = "concurrent"
	// ScanSequential runs scanners in registration order; each sees the
	// elements merged before it.
	ScanSequential ScanMode = "sequential"
)

// ValidScanModes enumerates all recognized scan modes.
var ValidScanModes = []ScanMode{ScanConcurrent, ScanSequential}

// ProjectConfig holds project-level configuration loaded from .pushkraft.yaml.
type ProjectConfig struct {
	ScanMode        ScanMode       `yaml:"scan_mode"        json:"scan_mode,omitempty"`
	Full            bool           `yaml:"full"             json:"full,omitempty"`
	ExcludePaths    []string       `yaml:"exclude_paths"    json:"exclude_paths,omitempty"`
	DisabledGoals   []string       `yaml:"disabled_goals"   json:"disabled_goals,omitempty"`
	ScoreWeightings map[string]int `yaml:"score_weightings" json:"score_weightings,omitempty"`
	Preferences     map[string]any `yaml:"preferences"      json:"preferences,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{ScanMode: ScanConcurrent}
}

// EffectiveScanMode returns the configured scan mode, defaulting to concurrent.
func (c ProjectConfig) EffectiveScanMode() ScanMode {
	if c.ScanMode == "" {
		return ScanConcurrent
	}
	return c.ScanMode
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	if c.ScanMode != "" {
		valid := false
		for _, m := range ValidScanModes {
			if c.ScanMode == m {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown scan_mode %q (valid: concurrent, sequential)", c.ScanMode)
		}
	}

	for i, p := range c.ExcludePaths {
		if p == "" {
			return fmt.Errorf("exclude_paths[%d] must not be empty", i)
		}
	}

	for i, g := range c.DisabledGoals {
		if g == "" {
			return fmt.Errorf("disabled_goals[%d] must not be empty", i)
		}
	}

	for name := range c.ScoreWeightings {
		if name == "" {
			return fmt.Errorf("score_weightings has an empty score name")
		}
	}

	return nil
}
