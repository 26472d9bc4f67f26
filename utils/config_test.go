package utils

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

func TestDefaultConfigIsValid(t *testing.T) {
	rule, err := DefaultConfig().Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if rule != rules.Conway {
		t.Errorf("default rule = %s, want %s", rule, rules.Conway)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"pattern": "toad", "max_generations": 12, "frame_rate": 1000000, "use_parallel": true, "rule": "B36/S23"}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Pattern != "toad" || config.MaxGenerations != 12 || !config.UseParallel {
		t.Errorf("unexpected config %+v", config)
	}
	if config.FrameRate != time.Millisecond {
		t.Errorf("FrameRate = %v, want 1ms", config.FrameRate)
	}
	if config.StagnationThreshold != DefaultConfig().StagnationThreshold {
		t.Errorf("unset fields should keep their defaults, got %+v", config)
	}

	rule, err := config.Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if rule.String() != "B36/S23" {
		t.Errorf("rule = %s, want B36/S23", rule)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(filepath.Join(dir, "missing.json")); !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("missing file error = %v", err)
	}

	path := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(path, []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig accepted malformed JSON")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		cause  error
	}{
		{"no pattern", func(c *Config) { c.Pattern = "" }, ErrInvalidConfig},
		{"negative generations", func(c *Config) { c.MaxGenerations = -1 }, ErrInvalidConfig},
		{"negative frame rate", func(c *Config) { c.FrameRate = -time.Second }, ErrInvalidConfig},
		{"negative workers", func(c *Config) { c.Workers = -1 }, ErrInvalidConfig},
		{"too many workers", func(c *Config) { c.Workers = math.MaxInt }, ErrInvalidConfig},
		{"zero stagnation threshold", func(c *Config) { c.StagnationThreshold = 0 }, ErrInvalidConfig},
		{"bad rule", func(c *Config) { c.Rule = "B9/S23" }, rules.ErrInvalidRule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			if _, err := config.Validate(); errors.Cause(err) != tt.cause {
				t.Errorf("Validate error = %v, want %v", err, tt.cause)
			}
		})
	}
}
