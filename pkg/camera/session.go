package camera

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"gocv.io/x/gocv"

	"github.com/teslashibe/go-snapcam/internal/log"
	"github.com/teslashibe/go-snapcam/pkg/debug"
)

// Session owns the lifecycle of one capture device: acquire the handle,
// negotiate parameters, run the interactive preview, take stills, release.
// It is single-threaded by construction; one goroutine drives every
// operation in sequence and the handle is never shared.
//
// Collaborator hooks default to the gocv-backed implementations and can be
// replaced before first use, mainly by tests.
type Session struct {
	// Logger carries the device index and a short session id.
	Logger *slog.Logger

	// Clock drives the settle delay and the preview countdown.
	Clock clock.Clock

	// OpenDevice acquires an exclusive frame source for a device index.
	OpenDevice func(index int) (FrameSource, error)

	// NewDisplay creates the preview display.
	NewDisplay func(title string) Display

	// Sink persists captured frames.
	Sink ImageSink

	index int
	cfg   Config
	src   FrameSource
	state State

	// Effective parameters read back from the device after open.
	// The device may ignore requests and substitute its own.
	effWidth  int
	effHeight int
	effFPS    int
}

// NewSession creates a session for the given device index.
// No hardware is touched until Open.
func NewSession(index int, cfg Config) *Session {
	sid := uuid.NewString()[:8]
	return &Session{
		Logger:     log.With("device", index, "session", sid),
		Clock:      clock.New(),
		OpenDevice: openVideoCapture,
		NewDisplay: newWindowDisplay,
		Sink:       JPEGSink{},
		index:      index,
		cfg:        cfg,
		state:      StateUnopened,
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Config returns the session configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// Effective returns the negotiated width, height and framerate.
// Only meaningful after a successful Open.
func (s *Session) Effective() (width, height, fps int) {
	return s.effWidth, s.effHeight, s.effFPS
}

// Open acquires the device handle, applies the requested parameters and
// reads back what the device actually negotiated. Open failures are
// reported, never retried: a busy device needs operator attention, not a
// retry loop leaking handles. Re-opening a released session is valid.
func (s *Session) Open() error {
	if s.state == StateOpen {
		return nil
	}

	src, err := s.OpenDevice(s.index)
	if err != nil {
		s.Logger.Error("failed to open device", "error", err)
		return deviceErr(s.index, "open", fmt.Errorf("%w: %v", ErrOpenFailed, err))
	}

	// Settle before touching parameters. Applying them immediately after
	// acquisition loses settings on some USB controllers.
	if s.cfg.SettleDelay > 0 {
		s.Clock.Sleep(s.cfg.SettleDelay)
	}

	src.Set(gocv.VideoCaptureFrameWidth, float64(s.cfg.Width))
	src.Set(gocv.VideoCaptureFrameHeight, float64(s.cfg.Height))
	src.Set(gocv.VideoCaptureFPS, float64(s.cfg.Framerate))
	if s.cfg.AutoFocus {
		// Best effort: not every device exposes autofocus.
		src.Set(gocv.VideoCaptureAutoFocus, 1)
	}

	s.src = src
	s.state = StateOpen
	s.effWidth = int(src.Get(gocv.VideoCaptureFrameWidth))
	s.effHeight = int(src.Get(gocv.VideoCaptureFrameHeight))
	s.effFPS = int(src.Get(gocv.VideoCaptureFPS))

	s.Logger.Info("device opened",
		"requested", fmt.Sprintf("%dx%d@%dfps", s.cfg.Width, s.cfg.Height, s.cfg.Framerate),
		"effective", fmt.Sprintf("%dx%d@%dfps", s.effWidth, s.effHeight, s.effFPS))
	return nil
}

// Preview shows the live frame stream with an identity/countdown overlay
// until the cancel key is pressed or the timeout expires. A frame read
// failure mid-preview means the stream died and is fatal: the session is
// released and the error returned for the caller to terminate on.
func (s *Session) Preview() error {
	if s.state != StateOpen {
		return deviceErr(s.index, "preview", ErrSessionClosed)
	}

	display := s.NewDisplay("snapcam preview")
	defer func() {
		if err := display.Close(); err != nil {
			s.Logger.Warn("failed to close preview display", "error", err)
		}
	}()

	frame := gocv.NewMat()
	defer frame.Close()

	idLine := fmt.Sprintf("Camera ID: %d", s.index)
	infoLine := fmt.Sprintf("Frame Info: %dx%d@%dfps", s.effWidth, s.effHeight, s.effFPS)
	hintLine := fmt.Sprintf("Enter %q to close windows", string(rune(s.cfg.CancelKey)))

	s.Logger.Info("preview started", "timeout", s.cfg.PreviewTimeout, "info", infoLine)

	start := s.Clock.Now()
	for {
		elapsed := s.Clock.Now().Sub(start)
		remaining := s.cfg.PreviewTimeout - elapsed
		if remaining < 0 {
			remaining = 0
		}
		countdown := fmt.Sprintf("Countdown Clock: %02d:%02d",
			int(remaining.Seconds())/60, int(remaining.Seconds())%60)

		if ok := s.src.Read(&frame); !ok || frame.Empty() {
			s.Logger.Error("cannot receive frame, stream is dead")
			s.Release()
			return deviceErr(s.index, "preview", ErrFrameRead)
		}

		drawOverlay(&frame, []string{idLine, infoLine, countdown, hintLine})
		display.IMShow(frame)
		debug.PreviewLog("preview frame elapsed=%s remaining=%s\n", elapsed, remaining)

		if key := display.WaitKey(1); key == s.cfg.CancelKey {
			s.Logger.Info("preview cancelled by operator")
			return nil
		}
		if s.Clock.Now().Sub(start) > s.cfg.PreviewTimeout {
			s.Logger.Info("preview timeout reached")
			return nil
		}
	}
}

// Capture reads one frame and persists it under dir as
// <label>_<timestamp>_<counter>.jpg, optionally watermarking it in place.
//
// An unopened session gets one implicit Open attempt before the read; a
// released session fails with ErrSessionClosed. Read and persist failures
// are recoverable: the session stays open and the caller may try again.
// When annotation fails after the file was written, the unannotated
// OutputImage is returned alongside the error.
func (s *Session) Capture(dir, label, counter string, annotate bool) (*OutputImage, error) {
	if s.state == StateReleased {
		return nil, deviceErr(s.index, "capture", ErrSessionClosed)
	}
	if s.state != StateOpen {
		s.Logger.Warn("session not open, opening it")
		if err := s.Open(); err != nil {
			return nil, err
		}
	}

	frame := gocv.NewMat()
	defer frame.Close()

	if ok := s.src.Read(&frame); !ok || frame.Empty() {
		s.Logger.Warn("failed to capture frame, no file written")
		return nil, deviceErr(s.index, "capture", ErrFrameRead)
	}

	now := s.Clock.Now()
	name := CaptureFilename(label, now, counter)
	path := filepath.Join(dir, name)

	if _, err := os.Stat(path); err == nil {
		// Same label, counter and second as a previous capture.
		s.Logger.Warn("overwriting existing capture", "path", path)
	}

	if err := s.Sink.Write(path, frame, s.cfg.Quality); err != nil {
		s.Logger.Warn("failed to save image", "path", path, "error", err)
		return nil, deviceErr(s.index, "capture", fmt.Errorf("%w: %v", ErrPersist, err))
	}
	s.Logger.Info("image saved", "file", name)

	out := &OutputImage{Path: path}
	if annotate {
		stamp := fmt.Sprintf("%s_%s_%s", label, now.Format(TimestampLayout), counter)
		if err := s.annotateFile(path, stamp); err != nil {
			s.Logger.Warn("failed to annotate image", "path", path, "error", err)
			return out, deviceErr(s.index, "annotate", fmt.Errorf("%w: %v", ErrPersist, err))
		}
		out.Annotated = true
	}
	return out, nil
}

// annotateFile re-reads a written image, draws the watermark near the
// top-left corner and rewrites the file in place.
func (s *Session) annotateFile(path, text string) error {
	img, err := s.Sink.ReadBack(path)
	if err != nil {
		return err
	}
	defer img.Close()

	drawWatermark(&img, fmt.Sprintf("Camera ID: %d", s.index), text)
	return s.Sink.Write(path, img, s.cfg.Quality)
}

// Release gives the device handle back. Idempotent: releasing an already
// released or never-opened session is a no-op. Close faults are logged and
// swallowed so a deferred release never masks the real return path.
func (s *Session) Release() {
	if s.src == nil {
		return
	}
	if err := s.src.Close(); err != nil {
		s.Logger.Warn("error while releasing device", "error", err)
	}
	s.src = nil
	s.state = StateReleased
	s.Logger.Info("camera resources released")
}
