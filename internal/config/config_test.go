package config

import (
	"path/filepath"
	"testing"

	"github.com/kmehta/orbitlab/internal/solver"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "twobody" {
		t.Errorf("expected model twobody, got %s", cfg.Model)
	}
	if cfg.Tn <= cfg.T0 {
		t.Error("expected tn > t0")
	}
	if len(cfg.Bodies) != 2 {
		t.Errorf("expected 2 bodies, got %d", len(cfg.Bodies))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestStepsFor(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.StepsFor() != solver.DefaultOrbitSteps {
		t.Errorf("expected orbit default, got %d", cfg.StepsFor())
	}

	cfg.Model = "freefall"
	if cfg.StepsFor() != solver.DefaultFreeFallSteps {
		t.Errorf("expected freefall default, got %d", cfg.StepsFor())
	}

	cfg.Steps = 777
	if cfg.StepsFor() != 777 {
		t.Errorf("expected override, got %d", cfg.StepsFor())
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Model = "threebody"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for threebody with 2 bodies")
	}

	cfg.Model = "warp"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown model")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := GetPreset("twobody", "earth-moon")
	if cfg == nil {
		t.Fatal("expected earth-moon preset")
	}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Model != cfg.Model || loaded.Tn != cfg.Tn {
		t.Errorf("round trip changed config: %+v", loaded)
	}
	if len(loaded.Bodies) != 2 || loaded.Bodies[1].Name != "Moon" {
		t.Errorf("round trip lost bodies: %+v", loaded.Bodies)
	}
}

func TestPresets(t *testing.T) {
	for _, model := range []string{"freefall", "twobody", "threebody"} {
		names := ListPresets(model)
		if len(names) == 0 {
			t.Errorf("expected presets for %s", model)
		}
		for _, name := range names {
			cfg := GetPreset(model, name)
			if cfg == nil {
				t.Fatalf("listed preset %s/%s missing", model, name)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %s/%s invalid: %v", model, name, err)
			}
			if cfg.Tn <= cfg.T0 {
				t.Errorf("preset %s/%s has empty time domain", model, name)
			}
		}
	}

	if GetPreset("twobody", "nope") != nil {
		t.Error("expected nil for unknown preset")
	}
	if ListPresets("warp") != nil {
		t.Error("expected nil preset list for unknown model")
	}
}
