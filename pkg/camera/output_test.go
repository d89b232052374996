package camera

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewRunDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "Pictures")
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	dir, err := NewRunDir(root, now)
	if err != nil {
		t.Fatalf("NewRunDir: %v", err)
	}
	if want := filepath.Join(root, "20240309_140507"); dir != want {
		t.Errorf("dir: got %s, want %s", dir, want)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat run dir: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", dir)
	}

	// Two runs in the same second resolve to the same directory.
	again, err := NewRunDir(root, now)
	if err != nil {
		t.Fatalf("second NewRunDir: %v", err)
	}
	if again != dir {
		t.Errorf("second run dir: got %s, want %s", again, dir)
	}
}

func TestCaptureFilename(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	tests := []struct {
		name    string
		label   string
		counter string
		want    string
	}{
		{name: "smoke", label: "smoke", counter: "1", want: "smoke_20240309_140507_1.jpg"},
		{name: "multi shot", label: "bench", counter: "12", want: "bench_20240309_140507_12.jpg"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CaptureFilename(tc.label, now, tc.counter)
			if got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestCaptureFilename_ChangesWithTime(t *testing.T) {
	base := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	a := CaptureFilename("smoke", base, "1")
	b := CaptureFilename("smoke", base.Add(time.Second), "1")
	if a == b {
		t.Errorf("filenames one second apart are equal: %s", a)
	}

	// Same second, same counter: identical, by design.
	c := CaptureFilename("smoke", base.Add(500*time.Millisecond), "1")
	if a != c {
		t.Errorf("sub-second difference changed the filename: %s vs %s", a, c)
	}
}
