// Mission set (de)serialization for YAML files.
package airspace

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// MissionSet is the on-disk layout of a check input: the primary mission
// under test plus the traffic it is checked against.
type MissionSet struct {
	Primary Mission   `yaml:"primary" json:"primary"`
	Traffic []Mission `yaml:"traffic" json:"traffic"`
}

// LoadMissionSet reads a mission set from a YAML file, fills missing
// mission IDs with generated ones, and validates every mission.
func LoadMissionSet(path string) (*MissionSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mission set: %w", err)
	}
	var set MissionSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parse mission set: %w", err)
	}
	if err := set.normalize(); err != nil {
		return nil, err
	}
	return &set, nil
}

// SaveMissionSet writes a mission set as YAML.
func SaveMissionSet(path string, set *MissionSet) error {
	data, err := yaml.Marshal(set)
	if err != nil {
		return fmt.Errorf("marshal mission set: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write mission set: %w", err)
	}
	return nil
}

// normalize assigns IDs where missing, applies the default speed to unset
// speeds, and validates every mission in the set.
func (s *MissionSet) normalize() error {
	missions := []*Mission{&s.Primary}
	for i := range s.Traffic {
		missions = append(missions, &s.Traffic[i])
	}
	for _, m := range missions {
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		if m.Speed == 0 {
			m.Speed = DefaultSpeed
		}
		if err := m.Validate(); err != nil {
			return err
		}
	}
	return nil
}
