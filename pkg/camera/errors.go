package camera

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions.
var (
	// ErrNoDevices is returned when enumeration finds no capture devices.
	ErrNoDevices = errors.New("camera: no capture devices found")

	// ErrInvalidSelection is returned for an out-of-range device selection.
	ErrInvalidSelection = errors.New("camera: selection out of range")

	// ErrOpenFailed is returned when a device handle cannot be acquired.
	ErrOpenFailed = errors.New("camera: device open failed")

	// ErrFrameRead is returned when the device stops producing frames.
	ErrFrameRead = errors.New("camera: frame read failed")

	// ErrPersist is returned when a captured frame cannot be written or
	// annotated on disk.
	ErrPersist = errors.New("camera: image persist failed")

	// ErrSessionClosed is returned for operations on a released session.
	ErrSessionClosed = errors.New("camera: session released")
)

// DeviceError wraps an error with the device index and operation it
// occurred on, so failures are diagnosable from the log alone.
type DeviceError struct {
	Index int
	Op    string
	Err   error
}

// Error implements the error interface.
func (e *DeviceError) Error() string {
	return fmt.Sprintf("camera [device %d]: %s: %v", e.Index, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *DeviceError) Unwrap() error {
	return e.Err
}

func deviceErr(index int, op string, err error) error {
	return &DeviceError{Index: index, Op: op, Err: err}
}
