package camera

import (
	"sync"

	"gocv.io/x/gocv"
)

// MockSource implements FrameSource for testing.
// All methods can be customized via function fields.
type MockSource struct {
	// ReadFunc is called when Read is invoked.
	// If nil, Read reports success without touching the destination.
	ReadFunc func(dst *gocv.Mat) bool

	// GetFunc is called when Get is invoked.
	// If nil, returns the last value recorded by Set.
	GetFunc func(prop gocv.VideoCaptureProperties) float64

	// CloseFunc is called when Close is invoked. If nil, returns nil.
	CloseFunc func() error

	mu     sync.Mutex
	reads  int
	closes int
	sets   map[gocv.VideoCaptureProperties]float64
}

// NewMockSource creates a mock source that echoes applied settings back,
// like a device that accepts every requested parameter.
func NewMockSource() *MockSource {
	return &MockSource{
		sets: make(map[gocv.VideoCaptureProperties]float64),
	}
}

// Read calls ReadFunc and counts the call.
func (m *MockSource) Read(dst *gocv.Mat) bool {
	m.mu.Lock()
	m.reads++
	m.mu.Unlock()
	if m.ReadFunc != nil {
		return m.ReadFunc(dst)
	}
	return true
}

// Get calls GetFunc, or echoes the recorded Set value.
func (m *MockSource) Get(prop gocv.VideoCaptureProperties) float64 {
	if m.GetFunc != nil {
		return m.GetFunc(prop)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sets[prop]
}

// Set records the applied parameter.
func (m *MockSource) Set(prop gocv.VideoCaptureProperties, param float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sets == nil {
		m.sets = make(map[gocv.VideoCaptureProperties]float64)
	}
	m.sets[prop] = param
}

// IsOpened reports true until the source has been closed.
func (m *MockSource) IsOpened() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closes == 0
}

// Close calls CloseFunc and counts the call.
func (m *MockSource) Close() error {
	m.mu.Lock()
	m.closes++
	m.mu.Unlock()
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// Reads returns how many frames were requested.
func (m *MockSource) Reads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads
}

// Closes returns how many times Close was called.
func (m *MockSource) Closes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closes
}

// SetValue returns the last value applied for a property.
func (m *MockSource) SetValue(prop gocv.VideoCaptureProperties) (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.sets[prop]
	return v, ok
}

// MockDisplay implements Display for testing.
type MockDisplay struct {
	// WaitKeyFunc is called when WaitKey is invoked.
	// If nil, returns -1 (no key pressed).
	WaitKeyFunc func(delay int) int

	mu     sync.Mutex
	shown  int
	closed int
}

// IMShow counts the rendered frame.
func (m *MockDisplay) IMShow(_ gocv.Mat) {
	m.mu.Lock()
	m.shown++
	m.mu.Unlock()
}

// WaitKey calls WaitKeyFunc.
func (m *MockDisplay) WaitKey(delay int) int {
	if m.WaitKeyFunc != nil {
		return m.WaitKeyFunc(delay)
	}
	return -1
}

// Close counts the call.
func (m *MockDisplay) Close() error {
	m.mu.Lock()
	m.closed++
	m.mu.Unlock()
	return nil
}

// Shown returns how many frames were rendered.
func (m *MockDisplay) Shown() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.shown
}

// Closed returns how many times the display was closed.
func (m *MockDisplay) Closed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// SinkWrite records one Write invocation on a MockSink.
type SinkWrite struct {
	Path    string
	Quality int
}

// MockSink implements ImageSink for testing.
type MockSink struct {
	// WriteFunc is called when Write is invoked. If nil, returns nil.
	WriteFunc func(path string, img gocv.Mat, quality int) error

	// ReadBackFunc is called when ReadBack is invoked.
	// If nil, returns a small blank image.
	ReadBackFunc func(path string) (gocv.Mat, error)

	mu        sync.Mutex
	writes    []SinkWrite
	readBacks int
}

// Write records the call and delegates to WriteFunc.
func (m *MockSink) Write(path string, img gocv.Mat, quality int) error {
	m.mu.Lock()
	m.writes = append(m.writes, SinkWrite{Path: path, Quality: quality})
	m.mu.Unlock()
	if m.WriteFunc != nil {
		return m.WriteFunc(path, img, quality)
	}
	return nil
}

// ReadBack records the call and delegates to ReadBackFunc.
func (m *MockSink) ReadBack(path string) (gocv.Mat, error) {
	m.mu.Lock()
	m.readBacks++
	m.mu.Unlock()
	if m.ReadBackFunc != nil {
		return m.ReadBackFunc(path)
	}
	return gocv.NewMatWithSize(120, 160, gocv.MatTypeCV8UC3), nil
}

// Writes returns the recorded Write calls.
func (m *MockSink) Writes() []SinkWrite {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SinkWrite, len(m.writes))
	copy(out, m.writes)
	return out
}

// ReadBacks returns how many times ReadBack was called.
func (m *MockSink) ReadBacks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.readBacks
}

// MockEnumerator implements Enumerator for testing.
type MockEnumerator struct {
	// Devices is returned by ListDevices when Err is nil.
	Devices []Device
	// Err is returned by ListDevices when set.
	Err error
}

// ListDevices returns the configured devices or error.
func (m *MockEnumerator) ListDevices() ([]Device, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Devices) == 0 {
		return nil, ErrNoDevices
	}
	return m.Devices, nil
}
