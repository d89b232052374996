// Package camera implements the capture session lifecycle for snapcam:
// device enumeration and selection, exclusive open with parameter
// negotiation, a bounded interactive preview, single-frame capture with
// optional watermarking, and idempotent release.
package camera

import "time"

// Config holds all capture session parameters.
// Width/Height/Framerate are requests; the device may negotiate different
// values, which the session reads back after open.
type Config struct {
	Width     int // Requested frame width in pixels
	Height    int // Requested frame height in pixels
	Framerate int // Requested FPS
	Quality   int // JPEG quality 1-100

	// AutoFocus requests continuous autofocus at open time.
	// Best effort: devices without it are not an error.
	AutoFocus bool

	// SettleDelay is waited between acquiring the handle and applying
	// parameters. Some USB controllers drop settings applied too early.
	SettleDelay time.Duration

	// PreviewTimeout bounds the interactive preview loop.
	PreviewTimeout time.Duration

	// CancelKey closes the preview early. Compared against the display's
	// key poll result.
	CancelKey int
}

// DefaultConfig returns the recommended capture configuration:
// 720p at 30fps with near-lossless JPEG output.
func DefaultConfig() Config {
	return Config{
		Width:     1280,
		Height:    720,
		Framerate: 30,
		Quality:   95,

		AutoFocus:      true,
		SettleDelay:    time.Second,
		PreviewTimeout: 60 * time.Second,
		CancelKey:      'q',
	}
}

// Validate checks if the config values are within valid ranges.
// Returns a list of validation errors, or nil if valid.
func (c *Config) Validate() []string {
	var errors []string

	if c.Width < 160 || c.Width > 7680 {
		errors = append(errors, "width must be between 160 and 7680")
	}
	if c.Height < 120 || c.Height > 4320 {
		errors = append(errors, "height must be between 120 and 4320")
	}
	if c.Framerate < 1 || c.Framerate > 120 {
		errors = append(errors, "framerate must be between 1 and 120")
	}
	if c.Quality < 1 || c.Quality > 100 {
		errors = append(errors, "quality must be between 1 and 100")
	}
	if c.SettleDelay < 0 {
		errors = append(errors, "settle_delay must not be negative")
	}
	if c.PreviewTimeout <= 0 {
		errors = append(errors, "preview_timeout must be positive")
	}
	if c.CancelKey <= 0 {
		errors = append(errors, "cancel_key must be a printable key code")
	}

	return errors
}
