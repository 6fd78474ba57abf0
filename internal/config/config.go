// YAML check-configuration loader with CUE validation integration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"deconflict/internal/detect"
)

// CheckConfig holds the tunables of a deconfliction run. Defaults are
// applied at load time so the engine itself stays free of hidden state.
type CheckConfig struct {
	SafetyBufferM float64 `yaml:"safety_buffer_m"`
	Mode          string  `yaml:"mode"`                   // "2d" or "3d"
	Accuracy      string  `yaml:"accuracy"`               // standard, high, ultra
	TimeSamples   int     `yaml:"time_samples,omitempty"` // explicit override of the accuracy preset
}

// Default returns the configuration used when no file is given.
func Default() *CheckConfig {
	return &CheckConfig{
		SafetyBufferM: 10,
		Mode:          "2d",
		Accuracy:      string(detect.AccuracyStandard),
	}
}

// Load loads a YAML check configuration and validates it against a CUE
// schema before applying defaults.
func Load(configPath, cueSchemaPath string) (*CheckConfig, error) {
	if err := ValidateWithCue(configPath, cueSchemaPath); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the CUE schema cannot express defaults for.
func (c *CheckConfig) Validate() error {
	if c.SafetyBufferM <= 0 {
		return fmt.Errorf("safety_buffer_m must be positive, got %.2f", c.SafetyBufferM)
	}
	switch c.Mode {
	case "2d", "3d":
	default:
		return fmt.Errorf("mode must be 2d or 3d, got %q", c.Mode)
	}
	switch detect.Accuracy(c.Accuracy) {
	case detect.AccuracyStandard, detect.AccuracyHigh, detect.AccuracyUltra:
	default:
		return fmt.Errorf("accuracy must be standard, high, or ultra, got %q", c.Accuracy)
	}
	if c.TimeSamples != 0 && c.TimeSamples < 2 {
		return fmt.Errorf("time_samples must be at least 2, got %d", c.TimeSamples)
	}
	return nil
}

// Include3D reports whether the configured mode checks altitude.
func (c *CheckConfig) Include3D() bool {
	return c.Mode == "3d"
}

// Samples resolves the effective sample count: an explicit time_samples
// wins over the accuracy preset.
func (c *CheckConfig) Samples() int {
	if c.TimeSamples >= 2 {
		return c.TimeSamples
	}
	return detect.Accuracy(c.Accuracy).Samples()
}

// Params converts the configuration into detector parameters.
func (c *CheckConfig) Params() detect.Params {
	return detect.Params{
		SafetyBuffer: c.SafetyBufferM,
		Include3D:    c.Include3D(),
		TimeSamples:  c.Samples(),
	}
}
