//go:build !darwin

package capture

import (
	"context"
	"fmt"
	"image/png"
	"os"

	"github.com/kbinani/screenshot"

	"window-ocr/src/window"
)

type regionCapturer struct{}

// NewWindowCapturer on non-mac systems grabs the window's bounds
// rectangle from the virtual screen. There is no window-ID capture here,
// so occluding windows end up in the image; it is a best-effort stand-in
// that keeps the rest of the pipeline usable.
func NewWindowCapturer() Capturer { return regionCapturer{} }

func (regionCapturer) CaptureWindow(ctx context.Context, win window.Info, outPath string) error {
	if win.Bounds.Dx() <= 0 || win.Bounds.Dy() <= 0 {
		return fmt.Errorf("window %d has empty bounds %v", win.ID, win.Bounds)
	}

	img, err := screenshot.CaptureRect(win.Bounds)
	if err != nil {
		return fmt.Errorf("failed to capture region %v: %w", win.Bounds, err)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode capture as PNG: %w", err)
	}
	return nil
}
