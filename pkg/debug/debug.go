// Package debug provides global debug logging flags
package debug

import "fmt"

// Enabled controls whether debug logging is active
var Enabled bool

// Preview controls whether per-iteration preview loop logs are shown.
// Use --debug-preview flag to enable these very verbose logs
var Preview bool

// Log prints a message only if debug mode is enabled
func Log(format string, args ...interface{}) {
	if Enabled {
		fmt.Printf(format, args...)
	}
}

// Logln prints a message with newline only if debug mode is enabled
func Logln(msg string) {
	if Enabled {
		fmt.Println(msg)
	}
}

// PreviewLog prints a message only if preview debug mode is enabled
func PreviewLog(format string, args ...interface{}) {
	if Preview {
		fmt.Printf(format, args...)
	}
}
