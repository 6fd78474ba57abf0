package config

import (
	"os"
	"path/filepath"
	"testing"

	"deconflict/internal/detect"
)

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "check.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoadConfigValid(t *testing.T) {
	path := writeConfig(t, `
safety_buffer_m: 25
mode: 3d
accuracy: high
`)
	cfg, err := Load(path, "../../schemas/check.cue")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.SafetyBufferM != 25 {
		t.Errorf("buffer = %.1f, want 25", cfg.SafetyBufferM)
	}
	if !cfg.Include3D() {
		t.Error("mode 3d not reflected in Include3D")
	}
	if cfg.Samples() != 50 {
		t.Errorf("samples = %d, want 50 for high accuracy", cfg.Samples())
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `safety_buffer_m: 12`)
	cfg, err := Load(path, "../../schemas/check.cue")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Mode != "2d" || cfg.Accuracy != string(detect.AccuracyStandard) {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.Samples() != detect.DefaultTimeSamples {
		t.Errorf("samples = %d, want %d", cfg.Samples(), detect.DefaultTimeSamples)
	}
}

func TestLoadConfigSampleOverride(t *testing.T) {
	path := writeConfig(t, `
safety_buffer_m: 10
accuracy: ultra
time_samples: 250
`)
	cfg, err := Load(path, "../../schemas/check.cue")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Samples() != 250 {
		t.Errorf("explicit time_samples should win over preset, got %d", cfg.Samples())
	}
	p := cfg.Params()
	if p.TimeSamples != 250 || p.SafetyBuffer != 10 || p.Include3D {
		t.Errorf("unexpected params: %+v", p)
	}
}

func TestLoadConfigRejectedBySchema(t *testing.T) {
	path := writeConfig(t, `mode: sideways`)
	if _, err := Load(path, "../../schemas/check.cue"); err == nil {
		t.Fatal("expected schema validation failure")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []CheckConfig{
		{SafetyBufferM: 0, Mode: "2d", Accuracy: "standard"},
		{SafetyBufferM: 10, Mode: "vertical", Accuracy: "standard"},
		{SafetyBufferM: 10, Mode: "2d", Accuracy: "exact"},
		{SafetyBufferM: 10, Mode: "2d", Accuracy: "standard", TimeSamples: 1},
	}
	for i, c := range cases {
		if err := c.Validate(); err == nil {
			t.Errorf("case %d: expected validation error for %+v", i, c)
		}
	}
}
