//go:build darwin

package capture

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"

	"window-ocr/src/window"
)

type screencaptureCapturer struct{}

// NewWindowCapturer captures through the OS screencapture utility,
// restricted to the window ID, opaque, without the drop shadow.
func NewWindowCapturer() Capturer { return screencaptureCapturer{} }

func (screencaptureCapturer) CaptureWindow(ctx context.Context, win window.Info, outPath string) error {
	cmd := exec.CommandContext(ctx, "screencapture",
		"-l", strconv.FormatUint(uint64(win.ID), 10),
		"-o", "-x", "-t", "png",
		outPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("screencapture failed (grant Screen Recording permission to your terminal in System Settings > Privacy & Security): %w: %s", err, out)
	}
	return nil
}
