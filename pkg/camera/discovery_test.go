package camera

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// fakeDeviceTree lays out dev nodes and sysfs name files for enumeration
// tests. names maps node base names (video0) to card names; an empty card
// name means no sysfs entry.
func fakeDeviceTree(t *testing.T, names map[string]string) *LinuxEnumerator {
	t.Helper()
	root := t.TempDir()
	dev := filepath.Join(root, "dev")
	sysfs := filepath.Join(root, "sys")
	if err := os.MkdirAll(dev, 0o755); err != nil {
		t.Fatal(err)
	}

	for node, name := range names {
		if err := os.WriteFile(filepath.Join(dev, node), nil, 0o644); err != nil {
			t.Fatal(err)
		}
		if name == "" {
			continue
		}
		nodeDir := filepath.Join(sysfs, node)
		if err := os.MkdirAll(nodeDir, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(nodeDir, "name"), []byte(name+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	return &LinuxEnumerator{
		DevGlob:   filepath.Join(dev, "video*"),
		SysfsRoot: sysfs,
	}
}

func TestLinuxEnumerator_ListDevices(t *testing.T) {
	enum := fakeDeviceTree(t, map[string]string{
		"video2":  "Rear Camera",
		"video0":  "USB Cam",
		"video10": "",
	})

	devices, err := enum.ListDevices()
	if err != nil {
		t.Fatalf("ListDevices: %v", err)
	}
	if len(devices) != 3 {
		t.Fatalf("devices: got %d, want 3", len(devices))
	}

	// Ordered by node number, indexed by position. The node set is gappy,
	// so the backend node must come from the path, not the position.
	wantNames := []string{"USB Cam", "Rear Camera", "Camera 2"}
	wantNodes := []int{0, 2, 10}
	for i, d := range devices {
		if d.Index != i {
			t.Errorf("device %d index: got %d, want %d", i, d.Index, i)
		}
		if d.Node != wantNodes[i] {
			t.Errorf("device %d node: got %d, want %d", i, d.Node, wantNodes[i])
		}
		if d.Name != wantNames[i] {
			t.Errorf("device %d name: got %q, want %q", i, d.Name, wantNames[i])
		}
	}
}

func TestLinuxEnumerator_NoDevices(t *testing.T) {
	enum := fakeDeviceTree(t, nil)

	_, err := enum.ListDevices()
	if !errors.Is(err, ErrNoDevices) {
		t.Fatalf("ListDevices error: got %v, want ErrNoDevices", err)
	}
}

func TestSelectDevice(t *testing.T) {
	devices := []Device{
		{Index: 0, Name: "USB Cam", Path: "/dev/video0"},
		{Index: 1, Name: "Rear Camera", Path: "/dev/video2"},
	}

	tests := []struct {
		name    string
		index   int
		wantErr bool
	}{
		{name: "first device", index: 0},
		{name: "last device", index: 1},
		{name: "negative", index: -1, wantErr: true},
		{name: "past end", index: 2, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dev, err := SelectDevice(devices, tc.index)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidSelection) {
					t.Fatalf("got %v, want ErrInvalidSelection", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("SelectDevice: %v", err)
			}
			if dev.Index != tc.index {
				t.Errorf("index: got %d, want %d", dev.Index, tc.index)
			}
		})
	}
}
