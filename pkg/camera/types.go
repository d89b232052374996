package camera

import "gocv.io/x/gocv"

// State is the lifecycle state of a Session.
type State int

const (
	// StateUnopened means no device handle has been acquired yet.
	StateUnopened State = iota
	// StateOpen means the device handle is held and streaming.
	StateOpen
	// StateReleased means the handle was given back; only re-open is valid.
	StateReleased
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUnopened:
		return "unopened"
	case StateOpen:
		return "open"
	case StateReleased:
		return "released"
	default:
		return "unknown"
	}
}

// Device describes one enumerated capture device.
// Index is the selection ordinal in the enumerated list. Node is the number
// parsed from Path and is what the capture backend opens; the two differ
// when node numbering has gaps (video0, video2).
type Device struct {
	Index int
	Node  int
	Name  string
	Path  string
}

// OutputImage is a capture artifact written to disk.
type OutputImage struct {
	Path      string
	Annotated bool
}

// FrameSource is the frame-acquisition capability of an open device.
// *gocv.VideoCapture satisfies it directly.
type FrameSource interface {
	Read(dst *gocv.Mat) bool
	Get(prop gocv.VideoCaptureProperties) float64
	Set(prop gocv.VideoCaptureProperties, param float64)
	IsOpened() bool
	Close() error
}

// Display renders frames and reports key presses.
// *gocv.Window satisfies it directly.
type Display interface {
	IMShow(img gocv.Mat)
	WaitKey(delay int) int
	Close() error
}

// ImageSink encodes frames to files and reads them back for annotation.
type ImageSink interface {
	Write(path string, img gocv.Mat, quality int) error
	ReadBack(path string) (gocv.Mat, error)
}

// Enumerator lists the capture devices present on the host.
type Enumerator interface {
	ListDevices() ([]Device, error)
}
