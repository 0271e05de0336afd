// Package capture produces a lossless still image of a single window.
package capture

import (
	"context"

	"window-ocr/src/window"
)

// Capturer writes a PNG of one window to outPath. Implementations do not
// retry; a failed capture aborts the invocation that requested it.
type Capturer interface {
	CaptureWindow(ctx context.Context, win window.Info, outPath string) error
}
