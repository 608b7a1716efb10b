package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// ErrInvalidConfig is returned when an environment value cannot be parsed.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Layout selects the level generator.
	Layout world.Layout

	// Markers is the number of static marker entities placed at room centers,
	// starting with the second room.
	Markers int
}

// DefaultConfig returns a time-seeded room-and-corridor configuration.
func DefaultConfig() Config {
	return Config{Layout: world.LayoutRooms}
}

// ConfigFromEnv reads DUNGEON_SEED, DUNGEON_LAYOUT and DUNGEON_MARKERS.
// Unset variables keep their defaults.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v, ok := os.LookupEnv("DUNGEON_SEED"); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%w: DUNGEON_SEED: %w", ErrInvalidConfig, err)
		}
		cfg.Seed = seed
	}

	if v, ok := os.LookupEnv("DUNGEON_LAYOUT"); ok {
		layout, err := world.ParseLayout(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: DUNGEON_LAYOUT: %w", ErrInvalidConfig, err)
		}
		cfg.Layout = layout
	}

	if v, ok := os.LookupEnv("DUNGEON_MARKERS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, fmt.Errorf("%w: DUNGEON_MARKERS must be a non-negative integer, got %q", ErrInvalidConfig, v)
		}
		cfg.Markers = n
	}

	return cfg, nil
}
