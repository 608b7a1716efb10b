package game

import (
	"errors"
	"testing"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("DUNGEON_SEED", "42")
	t.Setenv("DUNGEON_LAYOUT", "scatter")
	t.Setenv("DUNGEON_MARKERS", "3")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.Seed != 42 || cfg.Layout != world.LayoutScatter || cfg.Markers != 3 {
		t.Errorf("Unexpected config %+v", cfg)
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("DUNGEON_SEED", "")
	t.Setenv("DUNGEON_LAYOUT", "")
	t.Setenv("DUNGEON_MARKERS", "")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestConfigFromEnvInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"DUNGEON_SEED", "abc"},
		{"DUNGEON_LAYOUT", "maze"},
		{"DUNGEON_MARKERS", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := ConfigFromEnv(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig for %s=%q, got %v", tt.key, tt.value, err)
			}
		})
	}
}
