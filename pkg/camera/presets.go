package camera

// Preset names for common configurations
const (
	PresetDefault = "default"
	PresetLowFPS  = "lowfps"
	PresetVGA     = "vga"
	Preset1080p   = "1080p"
)

// Presets returns all available preset configurations.
func Presets() map[string]Config {
	return map[string]Config{
		PresetDefault: DefaultConfig(),
		PresetLowFPS:  LowFPSConfig(),
		PresetVGA:     VGAConfig(),
		Preset1080p:   HD1080Config(),
	}
}

// PresetNames returns the list of available preset names.
func PresetNames() []string {
	return []string{
		PresetDefault,
		PresetLowFPS,
		PresetVGA,
		Preset1080p,
	}
}

// GetPreset returns a preset config by name, or nil if not found.
func GetPreset(name string) *Config {
	presets := Presets()
	if cfg, ok := presets[name]; ok {
		return &cfg
	}
	return nil
}

// LowFPSConfig returns 720p at 15fps.
// Gentler on bus bandwidth for older USB controllers.
func LowFPSConfig() Config {
	cfg := DefaultConfig()
	cfg.Framerate = 15
	return cfg
}

// VGAConfig returns 640x480 configuration.
// Use this if higher resolution causes issues.
func VGAConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 640
	cfg.Height = 480
	return cfg
}

// HD1080Config returns 1080p Full HD configuration.
func HD1080Config() Config {
	cfg := DefaultConfig()
	cfg.Width = 1920
	cfg.Height = 1080
	return cfg
}
