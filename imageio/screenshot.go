package imageio

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/flexengine/renderer/hal"
	"github.com/flexengine/renderer/internal/thread"
)

// ScreenshotWriter encodes and writes screenshots on a dedicated thread so
// a screenshot request never blocks the frame that issued it; Update()
// calls Poll() to report completion, matching the renderer's per-frame
// "screenshot async completion" bookkeeping.
type ScreenshotWriter struct {
	t       *thread.Thread
	pending chan error
}

// NewScreenshotWriter starts the writer's background thread.
func NewScreenshotWriter() *ScreenshotWriter {
	return &ScreenshotWriter{t: thread.New()}
}

// Close stops the background thread.
func (w *ScreenshotWriter) Close() { w.t.Stop() }

// Save queues img for asynchronous PNG encode + write to path. Only one
// save may be pending at a time; a second call before the first completes
// returns false without queuing.
func (w *ScreenshotWriter) Save(path string, img image.Image) bool {
	if w.pending != nil {
		select {
		case <-w.pending:
		default:
			return false
		}
	}

	done := make(chan error, 1)
	w.pending = done
	w.t.CallAsync(func() {
		done <- writePNG(path, img)
	})
	return true
}

// Poll reports whether a queued Save has completed, returning its error (if
// any) exactly once. ok is false while the save is still in flight or none
// was queued.
func (w *ScreenshotWriter) Poll() (err error, ok bool) {
	if w.pending == nil {
		return nil, false
	}
	select {
	case err = <-w.pending:
		w.pending = nil
		return err, true
	default:
		return nil, false
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}
	hal.Logger().Info("wrote screenshot", "path", path)
	return nil
}
