package camera

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// LinuxEnumerator lists V4L2 capture devices by scanning device nodes and
// reading the driver-reported card name from sysfs.
type LinuxEnumerator struct {
	// DevGlob matches candidate device nodes. Defaults to /dev/video*.
	DevGlob string
	// SysfsRoot is where per-device name files live.
	// Defaults to /sys/class/video4linux.
	SysfsRoot string
}

// NewLinuxEnumerator returns an enumerator with the standard paths.
func NewLinuxEnumerator() *LinuxEnumerator {
	return &LinuxEnumerator{
		DevGlob:   "/dev/video*",
		SysfsRoot: "/sys/class/video4linux",
	}
}

var videoNodeRe = regexp.MustCompile(`video(\d+)$`)

// ListDevices returns the capture devices present on the host, ordered by
// device node number. The Index of each entry is its position in the
// returned list, which is what the capture backend opens.
func (e *LinuxEnumerator) ListDevices() ([]Device, error) {
	matches, err := filepath.Glob(e.DevGlob)
	if err != nil {
		return nil, fmt.Errorf("camera: device scan failed: %w", err)
	}

	sort.Slice(matches, func(i, j int) bool {
		return nodeNumber(matches[i]) < nodeNumber(matches[j])
	})

	var devices []Device
	for _, path := range matches {
		if nodeNumber(path) < 0 {
			continue
		}
		index := len(devices)
		devices = append(devices, Device{
			Index: index,
			Node:  nodeNumber(path),
			Name:  e.deviceName(path, index),
			Path:  path,
		})
	}

	if len(devices) == 0 {
		return nil, ErrNoDevices
	}
	return devices, nil
}

// deviceName reads the card name from sysfs, falling back to a generated
// name when the attribute is missing (containers, exotic drivers).
func (e *LinuxEnumerator) deviceName(devPath string, index int) string {
	nameFile := filepath.Join(e.SysfsRoot, filepath.Base(devPath), "name")
	if raw, err := os.ReadFile(nameFile); err == nil {
		if name := strings.TrimSpace(string(raw)); name != "" {
			return name
		}
	}
	return fmt.Sprintf("Camera %d", index)
}

func nodeNumber(path string) int {
	m := videoNodeRe.FindStringSubmatch(path)
	if m == nil {
		return -1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return -1
	}
	return n
}

// SelectDevice validates an operator's choice against the enumerated list.
// The index is positional: valid values are [0, len(devices)-1].
func SelectDevice(devices []Device, index int) (Device, error) {
	if index < 0 || index >= len(devices) {
		return Device{}, fmt.Errorf("%w: %d not in [0-%d]", ErrInvalidSelection, index, len(devices)-1)
	}
	return devices[index], nil
}
