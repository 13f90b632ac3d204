package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
)

// DefaultConfigFile is read by the driver when present
const DefaultConfigFile = "config.json"

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width" env:"GOL_WIDTH"`
	Height              int           `json:"height" env:"GOL_HEIGHT"`
	FrameRate           time.Duration `json:"frame_rate" env:"GOL_FRAME_RATE"`
	AutoRestart         bool          `json:"auto_restart" env:"GOL_AUTO_RESTART"`
	StagnationThreshold int           `json:"stagnation_threshold" env:"GOL_STAGNATION_THRESHOLD"`
	MaxGenerations      int           `json:"max_generations" env:"GOL_MAX_GENERATIONS"`
	RandomDensity       float64       `json:"random_density" env:"GOL_RANDOM_DENSITY"`
	Seed                int64         `json:"seed" env:"GOL_SEED"`
	Gliders             int           `json:"gliders" env:"GOL_GLIDERS"`
	Pulsars             int           `json:"pulsars" env:"GOL_PULSARS"`
	Interactive         bool          `json:"interactive" env:"GOL_INTERACTIVE"`
	Colors              bool          `json:"colors" env:"GOL_COLORS"`
	Verbose             bool          `json:"verbose" env:"GOL_VERBOSE"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               64,
		Height:              32,
		FrameRate:           100 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		MaxGenerations:      1000,
		RandomDensity:       0.3,
		Colors:              true,
	}
}

// LoadConfig loads configuration from a JSON file, then applies GOL_* environment overrides.
// A missing file leaves the defaults in place.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	if filename != "" {
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
	}

	if err := env.Parse(&config); err != nil {
		return config, errors.Wrap(err, "[LoadConfig] failed to parse environment")
	}

	return config, nil
}

// Bind attaches the configuration to the provided parser so flags override file and environment values
func (c *Config) Bind(p *flaggy.Parser) {
	p.Int(&c.Width, "x", "width", "Width of the universe")
	p.Int(&c.Height, "y", "height", "Height of the universe")
	p.Duration(&c.FrameRate, "i", "interval", "Interval between generations, for example 150ms")
	p.Int(&c.MaxGenerations, "s", "maxSteps", "Stop after this many generations (0 runs forever)")
	p.Bool(&c.Interactive, "n", "interactive", "Start the interactive terminal UI")
	p.Bool(&c.AutoRestart, "a", "autoRestart", "Restart on extinction or stagnation")
	p.Int64(&c.Seed, "", "seed", "Seed for the initial population (0 picks a random one)")
	p.Float64(&c.RandomDensity, "d", "density", "Probability that a cell starts alive")
	p.Int(&c.Gliders, "g", "gliders", "Start from an empty universe with this many gliders")
	p.Int(&c.Pulsars, "p", "pulsars", "Start from an empty universe with this many pulsars")
	p.Bool(&c.Colors, "c", "color", "Colour live cells")
	p.Bool(&c.Verbose, "", "verbose", "Log cell mutations")
}

// Validate reports configuration values the universe cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width < 0 || c.Height < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative size %dx%d", c.Width, c.Height)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative frame rate %v", c.FrameRate)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] density %v outside [0, 1]", c.RandomDensity)
	case c.Gliders < 0 || c.Pulsars < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative pattern count")
	}
	return nil
}
