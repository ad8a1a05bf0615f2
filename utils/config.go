package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

const (
	SeedDefault = "default"
	SeedBlinker = "blinker"
	SeedGlider  = "glider"
	SeedRandom  = "random"

	EngineTracked  = "tracked"
	EngineFullScan = "fullscan"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width" env:"GOLIFE_WIDTH"`
	Height              int           `json:"height" env:"GOLIFE_HEIGHT"`
	FrameRate           time.Duration `json:"frame_rate" env:"GOLIFE_FRAME_RATE"`
	MaxGenerations      int           `json:"max_generations" env:"GOLIFE_MAX_GENERATIONS"`
	Seed                string        `json:"seed" env:"GOLIFE_SEED"`
	RandomDensity       float64       `json:"random_density" env:"GOLIFE_RANDOM_DENSITY"`
	RandomSeed          int64         `json:"random_seed" env:"GOLIFE_RANDOM_SEED"`
	Engine              string        `json:"engine" env:"GOLIFE_ENGINE"`
	UseMemoryPool       bool          `json:"use_memory_pool" env:"GOLIFE_USE_MEMORY_POOL"`
	StopWhenStagnant    bool          `json:"stop_when_stagnant" env:"GOLIFE_STOP_WHEN_STAGNANT"`
	StagnationThreshold int           `json:"stagnation_threshold" env:"GOLIFE_STAGNATION_THRESHOLD"`
	Color               bool          `json:"color" env:"GOLIFE_COLOR"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               21,
		Height:              21,
		FrameRate:           time.Second,
		MaxGenerations:      0, // Run until interrupted
		Seed:                SeedDefault,
		RandomDensity:       0.15,
		Engine:              EngineTracked,
		UseMemoryPool:       true,
		StopWhenStagnant:    false,
		StagnationThreshold: 5,
		Color:               true,
	}
}

// LoadConfig loads configuration from a JSON file, then applies GOLIFE_*
// environment overrides. A missing file is not an error.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	default:
		if err = json.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
		}
	}

	if err = env.Parse(&config); err != nil {
		return config, errors.Wrap(err, "[LoadConfig] failed to parse env")
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrap(err, "[LoadConfig]")
	}

	return config, nil
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return errors.Wrapf(ErrInvalidConfig, "board must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if c.FrameRate < 0 {
		return errors.Wrapf(ErrInvalidConfig, "negative frame rate %v", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "negative max generations %d", c.MaxGenerations)
	}
	switch c.Seed {
	case SeedDefault, SeedBlinker, SeedGlider, SeedRandom:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown seed %q", c.Seed)
	}
	switch c.Engine {
	case EngineTracked, EngineFullScan:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown engine %q", c.Engine)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Wrapf(ErrInvalidConfig, "random density %v outside [0,1]", c.RandomDensity)
	}
	if c.StopWhenStagnant && c.StagnationThreshold < 1 {
		return errors.Wrapf(ErrInvalidConfig, "stagnation threshold %d must be positive", c.StagnationThreshold)
	}
	return nil
}
