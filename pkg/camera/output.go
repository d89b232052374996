package camera

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// TimestampLayout is the second-resolution stamp used in run directory and
// capture file names.
const TimestampLayout = "20060102_150405"

// NewRunDir creates (if needed) the capture root and a fresh timestamped
// subdirectory under it for this run. All captures of one process run land
// in the returned directory.
func NewRunDir(root string, now time.Time) (string, error) {
	dir := filepath.Join(root, now.Format(TimestampLayout))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("camera: create run directory: %w", err)
	}
	return dir, nil
}

// CaptureFilename builds the file name for one capture:
// <label>_<YYYYMMDD_HHMMSS>_<counter>.jpg
func CaptureFilename(label string, now time.Time, counter string) string {
	return fmt.Sprintf("%s_%s_%s.jpg", label, now.Format(TimestampLayout), counter)
}
