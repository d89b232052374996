package camera

import (
	"fmt"

	"gocv.io/x/gocv"
)

// openVideoCapture acquires an exclusive gocv handle for a device index.
// Default OpenDevice hook of a Session.
func openVideoCapture(index int) (FrameSource, error) {
	src, err := gocv.VideoCaptureDevice(index)
	if err != nil {
		return nil, err
	}
	if !src.IsOpened() {
		_ = src.Close()
		return nil, fmt.Errorf("device %d not opened", index)
	}
	return src, nil
}

// newWindowDisplay creates a HighGUI window. Default NewDisplay hook.
func newWindowDisplay(title string) Display {
	return gocv.NewWindow(title)
}

// JPEGSink persists frames as JPEG files via OpenCV's image codecs.
type JPEGSink struct{}

// Write encodes img at the given quality and writes it to path.
func (JPEGSink) Write(path string, img gocv.Mat, quality int) error {
	params := []int{gocv.IMWriteJpegQuality, quality}
	if ok := gocv.IMWriteWithParams(path, img, params); !ok {
		return fmt.Errorf("imwrite %s failed", path)
	}
	return nil
}

// ReadBack re-reads a written image so it can be annotated in place.
// The caller owns the returned Mat and must Close it.
func (JPEGSink) ReadBack(path string) (gocv.Mat, error) {
	img := gocv.IMRead(path, gocv.IMReadColor)
	if img.Empty() {
		_ = img.Close()
		return gocv.Mat{}, fmt.Errorf("imread %s: empty image", path)
	}
	return img, nil
}
