package camera

import (
	"testing"
	"time"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("default config invalid: %v", errs)
	}
	if cfg.Width != 1280 || cfg.Height != 720 {
		t.Errorf("default resolution: got %dx%d, want 1280x720", cfg.Width, cfg.Height)
	}
	if cfg.Quality != 95 {
		t.Errorf("default quality: got %d, want 95", cfg.Quality)
	}
	if cfg.PreviewTimeout != 60*time.Second {
		t.Errorf("default preview timeout: got %v, want 60s", cfg.PreviewTimeout)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero width", mutate: func(c *Config) { c.Width = 0 }},
		{name: "zero height", mutate: func(c *Config) { c.Height = 0 }},
		{name: "zero framerate", mutate: func(c *Config) { c.Framerate = 0 }},
		{name: "excessive framerate", mutate: func(c *Config) { c.Framerate = 500 }},
		{name: "quality too high", mutate: func(c *Config) { c.Quality = 101 }},
		{name: "negative settle", mutate: func(c *Config) { c.SettleDelay = -time.Second }},
		{name: "no timeout", mutate: func(c *Config) { c.PreviewTimeout = 0 }},
		{name: "no cancel key", mutate: func(c *Config) { c.CancelKey = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if errs := cfg.Validate(); len(errs) == 0 {
				t.Error("expected validation errors, got none")
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	for _, name := range PresetNames() {
		if GetPreset(name) == nil {
			t.Errorf("preset %q not found", name)
		}
	}
	if GetPreset("nonexistent") != nil {
		t.Error("unknown preset should return nil")
	}

	lowfps := GetPreset(PresetLowFPS)
	if lowfps.Framerate != 15 {
		t.Errorf("lowfps framerate: got %d, want 15", lowfps.Framerate)
	}
	vga := GetPreset(PresetVGA)
	if vga.Width != 640 || vga.Height != 480 {
		t.Errorf("vga resolution: got %dx%d, want 640x480", vga.Width, vga.Height)
	}
}
