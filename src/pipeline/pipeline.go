// Package pipeline chains one OCR invocation: locate window → capture →
// crop → recognize → clean → clipboard. Every run re-queries the window
// list and owns a scratch directory that dies with the invocation.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"window-ocr/src/capture"
	"window-ocr/src/clipboard"
	"window-ocr/src/config"
	"window-ocr/src/imgproc"
	"window-ocr/src/recognize"
	"window-ocr/src/textclean"
	"window-ocr/src/window"
)

// Not-found outcomes. Expected, non-exceptional; callers map them to
// exit codes or log lines, never to crashes.
var (
	ErrNoWindow = errors.New("no window matched")
	ErrNoText   = errors.New("no text recognized")
)

// RecognizeFunc is recognize.Text's shape, injectable for tests.
type RecognizeFunc func(ctx context.Context, imagePath string, cfg config.OCR) (string, error)

// Timings are the per-stage durations one run reports.
type Timings struct {
	Pick    time.Duration
	Capture time.Duration
	OCR     time.Duration
	Total   time.Duration
}

func (t Timings) String() string {
	return fmt.Sprintf("pick:%dms cap:%dms ocr:%dms total:%dms",
		t.Pick.Milliseconds(), t.Capture.Milliseconds(), t.OCR.Milliseconds(), t.Total.Milliseconds())
}

// Result is a successful run's output.
type Result struct {
	Text    string
	Window  window.Info
	Timings Timings
}

// Pipeline binds the collaborators for repeated runs. All parameters are
// fixed at construction; a trigger carries no payload.
type Pipeline struct {
	Windows   window.Source
	Capturer  capture.Capturer
	Recognize RecognizeFunc  // nil: recognize.Text
	Sink      clipboard.Sink // nil: the system clipboard
	App       string
	Title     string
	OCR       config.OCR
}

func (p *Pipeline) recognizeFunc() RecognizeFunc {
	if p.Recognize != nil {
		return p.Recognize
	}
	return recognize.Text
}

func (p *Pipeline) sink() clipboard.Sink {
	if p.Sink != nil {
		return p.Sink
	}
	return clipboard.System{}
}

// Run executes the chain once, synchronously. Failures abort the
// remaining stages: nothing reaches the clipboard unless every stage
// before it succeeded.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	t0 := time.Now()

	wins, err := p.Windows.List()
	if err != nil {
		return Result{}, fmt.Errorf("window list: %w", err)
	}
	win, ok := window.FirstCapturable(wins, p.App, p.Title)
	if !ok {
		return Result{}, fmt.Errorf("%w: app=%q title=%q", ErrNoWindow, p.App, p.Title)
	}
	t1 := time.Now()

	scratch, err := os.MkdirTemp("", "window-ocr-")
	if err != nil {
		return Result{}, fmt.Errorf("scratch dir: %w", err)
	}
	defer os.RemoveAll(scratch)

	capPath := filepath.Join(scratch, "capture.png")
	if err := p.Capturer.CaptureWindow(ctx, win, capPath); err != nil {
		return Result{}, fmt.Errorf("capture window %d: %w", win.ID, err)
	}
	t2 := time.Now()

	text, err := p.ocrFile(ctx, capPath, filepath.Join(scratch, "cropped.png"))
	if err != nil {
		return Result{}, err
	}
	t3 := time.Now()

	if text == "" {
		return Result{}, ErrNoText
	}

	if err := p.sink().Write(text); err != nil {
		return Result{}, fmt.Errorf("clipboard write: %w", err)
	}

	return Result{
		Text:   text,
		Window: win,
		Timings: Timings{
			Pick:    t1.Sub(t0),
			Capture: t2.Sub(t1),
			OCR:     t3.Sub(t2),
			Total:   t3.Sub(t0),
		},
	}, nil
}

// RunFile runs crop → recognize → clean on an existing image, skipping
// window location and capture. This is the test-mode path of the CLIs.
// The empty-text outcome is returned as "" with a nil error; callers
// decide whether that maps to ErrNoText.
func (p *Pipeline) RunFile(ctx context.Context, imagePath string) (string, error) {
	scratch, err := os.MkdirTemp("", "window-ocr-")
	if err != nil {
		return "", fmt.Errorf("scratch dir: %w", err)
	}
	defer os.RemoveAll(scratch)

	return p.ocrFile(ctx, imagePath, filepath.Join(scratch, "cropped.png"))
}

func (p *Pipeline) ocrFile(ctx context.Context, imagePath, cropPath string) (string, error) {
	ocrPath, err := imgproc.CropFile(imagePath, cropPath, p.OCR.Crop)
	if err != nil {
		return "", fmt.Errorf("crop: %w", err)
	}

	text, err := p.recognizeFunc()(ctx, ocrPath, p.OCR)
	if err != nil {
		return "", fmt.Errorf("ocr: %w", err)
	}
	if p.OCR.CleanupHUD {
		text = textclean.Clean(text)
	}
	return text, nil
}
