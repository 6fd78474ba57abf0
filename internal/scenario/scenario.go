// Scenario definitions: canned mission sets for demos and testing.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"deconflict/internal/airspace"
)

// Scenario bundles a mission set with a suggested safety buffer and an
// optional 3D flag, ready to feed into the checker.
type Scenario struct {
	Name          string             `yaml:"name"`
	Description   string             `yaml:"description,omitempty"`
	SafetyBufferM float64            `yaml:"safety_buffer_m"`
	Check3D       bool               `yaml:"check_3d,omitempty"`
	Primary       airspace.Mission   `yaml:"primary"`
	Traffic       []airspace.Mission `yaml:"traffic"`
}

// Load reads a YAML scenario definition from disk and validates its
// missions.
func Load(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := s.Primary.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	for _, m := range s.Traffic {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
		}
	}
	return &s, nil
}
