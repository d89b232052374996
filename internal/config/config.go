// Package config provides environment-based defaults for snapcam commands.
package config

import (
	"os"
	"strconv"
)

// DefaultOutputRoot is where capture run directories are created.
const DefaultOutputRoot = "Pictures"

// OutputRoot returns the capture root from SNAPCAM_OUTPUT.
// Falls back to DefaultOutputRoot if not set.
func OutputRoot() string {
	if dir := os.Getenv("SNAPCAM_OUTPUT"); dir != "" {
		return dir
	}
	return DefaultOutputRoot
}

// Label returns the capture label from SNAPCAM_LABEL.
// Falls back to the provided default if not set.
func Label(defaultLabel string) string {
	if label := os.Getenv("SNAPCAM_LABEL"); label != "" {
		return label
	}
	return defaultLabel
}

// DeviceIndex returns the device index from SNAPCAM_DEVICE.
// Falls back to the provided default if not set or unparsable.
func DeviceIndex(defaultIndex int) int {
	if raw := os.Getenv("SNAPCAM_DEVICE"); raw != "" {
		if idx, err := strconv.Atoi(raw); err == nil {
			return idx
		}
	}
	return defaultIndex
}

// LogLevel returns the log level from SNAPCAM_LOG_LEVEL or "info".
func LogLevel() string {
	if level := os.Getenv("SNAPCAM_LOG_LEVEL"); level != "" {
		return level
	}
	return "info"
}
