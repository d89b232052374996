// snapcam - capture still images from a USB camera.
//
// Enumerates capture devices, lets the operator pick one, opens a live
// preview for framing, then captures timestamped JPEGs with an optional
// watermark.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/teslashibe/go-snapcam/internal/config"
	"github.com/teslashibe/go-snapcam/internal/log"
	"github.com/teslashibe/go-snapcam/pkg/camera"
	"github.com/teslashibe/go-snapcam/pkg/debug"
)

func main() {
	// Command line flags
	device := flag.Int("device", config.DeviceIndex(-1), "Device index (-1 prompts for a selection)")
	label := flag.String("label", config.Label("capture"), "Label embedded in capture file names")
	count := flag.Int("count", 1, "Number of stills to capture")
	annotate := flag.Bool("annotate", true, "Watermark captures with device id and timestamp")
	output := flag.String("output", config.OutputRoot(), "Capture root directory")
	preset := flag.String("preset", "", fmt.Sprintf("Configuration preset %v", camera.PresetNames()))
	width := flag.Int("width", 0, "Requested frame width (overrides preset)")
	height := flag.Int("height", 0, "Requested frame height (overrides preset)")
	fps := flag.Int("fps", 0, "Requested framerate (overrides preset)")
	quality := flag.Int("quality", 0, "JPEG quality 1-100 (overrides preset)")
	timeout := flag.Duration("timeout", 60*time.Second, "Preview timeout")
	cancelKey := flag.String("cancel-key", "q", "Key that closes the preview early")
	noPreview := flag.Bool("no-preview", false, "Skip the interactive preview")
	logLevel := flag.String("log-level", config.LogLevel(), "Log level (debug, info, warn, error)")
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	debugPreview := flag.Bool("debug-preview", false, "Enable very verbose preview loop logging")
	flag.Parse()

	debug.Enabled = *debugFlag
	debug.Preview = *debugPreview
	if *debugFlag {
		*logLevel = "debug"
	}
	log.Init(*logLevel)

	cfg := buildConfig(*preset, *width, *height, *fps, *quality, *timeout, *cancelKey)
	if errs := cfg.Validate(); len(errs) > 0 {
		fatal("invalid configuration", "problems", strings.Join(errs, "; "))
	}

	devices, err := camera.NewLinuxEnumerator().ListDevices()
	if err != nil {
		fatal("device enumeration failed", "error", err)
	}

	idx := *device
	if idx < 0 {
		idx = promptSelection(devices)
	}
	dev, err := camera.SelectDevice(devices, idx)
	if err != nil {
		fatal("device selection failed", "error", err)
	}
	log.Info("selected camera", "index", dev.Index, "node", dev.Node, "name", dev.Name, "path", dev.Path)

	runDir, err := camera.NewRunDir(*output, time.Now())
	if err != nil {
		fatal("cannot create output directory", "error", err)
	}
	log.Info("captures will be saved", "dir", runDir)

	// Open by node number: with gappy node sets the selection ordinal and
	// the backend index disagree.
	session := camera.NewSession(dev.Node, cfg)
	defer session.Release()

	if err := session.Open(); err != nil {
		fatal("cannot open camera", "error", err)
	}

	if !*noPreview {
		if err := session.Preview(); err != nil {
			// A dead stream mid-preview means the camera is unusable.
			fatal("preview aborted", "error", err)
		}
	}

	for i := 1; i <= *count; i++ {
		img, err := session.Capture(runDir, *label, strconv.Itoa(i), *annotate)
		if err != nil {
			log.Warn("capture attempt failed", "attempt", i, "error", err)
		}
		if img != nil {
			log.Info("capture complete", "path", img.Path, "annotated", img.Annotated)
		}
	}

	session.Release()
}

// buildConfig layers preset and flag overrides over the defaults.
func buildConfig(preset string, width, height, fps, quality int, timeout time.Duration, cancelKey string) camera.Config {
	cfg := camera.DefaultConfig()
	if preset != "" {
		p := camera.GetPreset(preset)
		if p == nil {
			fatal("unknown preset", "preset", preset, "available", camera.PresetNames())
		}
		cfg = *p
	}
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}
	if fps > 0 {
		cfg.Framerate = fps
	}
	if quality > 0 {
		cfg.Quality = quality
	}
	cfg.PreviewTimeout = timeout
	if cancelKey != "" {
		cfg.CancelKey = int(cancelKey[0])
	}
	return cfg
}

// promptSelection prints the device table and reads one index from stdin.
// Unparsable or out-of-range input is fatal; guessing a camera is worse
// than stopping.
func promptSelection(devices []camera.Device) int {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Name", "Device"})
	for _, d := range devices {
		t.AppendRow(table.Row{d.Index, d.Name, d.Path})
	}
	t.Render()

	fmt.Printf("Please select the camera index from [0-%d]: ", len(devices)-1)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		fatal("reading selection failed", "error", err)
	}
	idx, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		fatal("selection is not a number", "input", strings.TrimSpace(line))
	}
	return idx
}

func fatal(msg string, args ...any) {
	log.Error(msg, args...)
	os.Exit(1)
}
