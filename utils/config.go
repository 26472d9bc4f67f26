package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid config")

// MaxWorkers bounds the workers setting of the parallel stepper
const MaxWorkers = 1024

// Config holds the configuration for the simulation
type Config struct {
	Pattern             string        `json:"pattern"`
	PatternFile         string        `json:"pattern_file"`
	FrameRate           time.Duration `json:"frame_rate"`
	MaxGenerations      int           `json:"max_generations"`
	UseParallel         bool          `json:"use_parallel"`
	Workers             int           `json:"workers"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	StopOnStagnation    bool          `json:"stop_on_stagnation"`
	Rule                string        `json:"rule"`
	Quiet               bool          `json:"quiet"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Pattern:             "glider",
		FrameRate:           150 * time.Millisecond,
		MaxGenerations:      100,
		UseParallel:         false,
		Workers:             0, // one per CPU
		StagnationThreshold: 5,
		StopOnStagnation:    true,
		Rule:                rules.Conway.String(),
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks the settings and returns the parsed rule
func (c Config) Validate() (rules.Rule, error) {
	if c.Pattern == "" && c.PatternFile == "" {
		return rules.Rule{}, errors.Wrap(ErrInvalidConfig, "[Validate] pattern or pattern_file is required")
	}
	if c.MaxGenerations < 0 {
		return rules.Rule{}, errors.Wrapf(ErrInvalidConfig, "[Validate] max_generations must not be negative: %d", c.MaxGenerations)
	}
	if c.FrameRate < 0 {
		return rules.Rule{}, errors.Wrapf(ErrInvalidConfig, "[Validate] frame_rate must not be negative: %v", c.FrameRate)
	}
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return rules.Rule{}, errors.Wrapf(ErrInvalidConfig, "[Validate] workers must be between 0 and %d: %d", MaxWorkers, c.Workers)
	}
	if c.StagnationThreshold < 1 {
		return rules.Rule{}, errors.Wrapf(ErrInvalidConfig, "[Validate] stagnation_threshold must be positive: %d", c.StagnationThreshold)
	}

	rule, err := rules.ParseRule(c.Rule)
	if err != nil {
		return rules.Rule{}, errors.Wrap(err, "[Validate] failed to parse rule")
	}
	return rule, nil
}
