package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `{"width": 10, "height": 12, "gliders": 2}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 10 || cfg.Height != 12 || cfg.Gliders != 2 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.StagnationThreshold != DefaultConfig().StagnationThreshold {
		t.Fatalf("unset field lost its default: %+v", cfg)
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	path := writeConfig(t, `{"width": "wide"}`)
	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "[LoadConfig] failed to unmarshal") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `{"width": 10, "height": 12}`)
	t.Setenv("GOL_WIDTH", "40")
	t.Setenv("GOL_FRAME_RATE", "250ms")
	t.Setenv("GOL_SEED", "99")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 40 || cfg.Height != 12 {
		t.Fatalf("expected env width and file height, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.FrameRate != 250*time.Millisecond || cfg.Seed != 99 {
		t.Fatalf("env values not applied: %+v", cfg)
	}
}

func TestLoadConfigEnvError(t *testing.T) {
	t.Setenv("GOL_HEIGHT", "tall")
	if _, err := LoadConfig(""); err == nil || !strings.Contains(err.Error(), "failed to parse environment") {
		t.Fatalf("expected environment error, got %v", err)
	}
}

func TestBindFlags(t *testing.T) {
	cfg := DefaultConfig()
	p := flaggy.NewParser("go-life")
	cfg.Bind(p)
	if err := p.ParseArgs([]string{"-x", "20", "--height", "8", "--seed", "5", "-g", "3"}); err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if cfg.Width != 20 || cfg.Height != 8 || cfg.Seed != 5 || cfg.Gliders != 3 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.FrameRate != DefaultConfig().FrameRate {
		t.Fatalf("unset flag changed frame rate to %v", cfg.FrameRate)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}

	for name, mutate := range map[string]func(*Config){
		"negative width":   func(c *Config) { c.Width = -1 },
		"negative rate":    func(c *Config) { c.FrameRate = -time.Second },
		"density too high": func(c *Config) { c.RandomDensity = 1.5 },
		"negative gliders": func(c *Config) { c.Gliders = -2 },
	} {
		cfg := DefaultConfig()
		mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: expected ErrInvalidConfig, got %v", name, err)
		}
	}
}
