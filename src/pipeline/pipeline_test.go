package pipeline

import (
	"context"
	"errors"
	"image"
	"os"
	"testing"

	"window-ocr/src/config"
	"window-ocr/src/imgproc"
	"window-ocr/src/window"
)

type fakeSource struct {
	wins []window.Info
	err  error
}

func (f fakeSource) List() ([]window.Info, error) { return f.wins, f.err }

type fakeCapturer struct {
	err      error
	captured *window.Info
}

func (f *fakeCapturer) CaptureWindow(ctx context.Context, win window.Info, outPath string) error {
	if f.err != nil {
		return f.err
	}
	f.captured = &win
	// Write a real PNG so the crop stage can decode it if asked to.
	return imgproc.EncodePNG(outPath, image.NewRGBA(image.Rect(0, 0, 20, 10)))
}

type memorySink struct {
	writes []string
	err    error
}

func (m *memorySink) Write(text string) error {
	if m.err != nil {
		return m.err
	}
	m.writes = append(m.writes, text)
	return nil
}

func staticRecognizer(text string, err error) RecognizeFunc {
	return func(ctx context.Context, imagePath string, cfg config.OCR) (string, error) {
		if _, statErr := os.Stat(imagePath); statErr != nil {
			return "", statErr
		}
		return text, err
	}
}

var gameWindow = window.Info{ID: 42, Owner: "DuckStation", Title: "Game", Layer: 0, Bounds: image.Rect(0, 0, 20, 10)}

func TestRunHappyPath(t *testing.T) {
	sink := &memorySink{}
	cap := &fakeCapturer{}
	p := &Pipeline{
		Windows:   fakeSource{wins: []window.Info{gameWindow}},
		Capturer:  cap,
		Recognize: staticRecognizer("こんにちは", nil),
		Sink:      sink,
		App:       "duckstation",
		OCR:       config.OCR{Backend: config.BackendAuto, CleanupHUD: true},
	}

	res, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Text != "こんにちは" {
		t.Errorf("Text = %q, want こんにちは", res.Text)
	}
	if res.Window.ID != 42 {
		t.Errorf("Window.ID = %d, want 42", res.Window.ID)
	}
	if len(sink.writes) != 1 || sink.writes[0] != "こんにちは" {
		t.Errorf("clipboard writes = %v, want exactly [こんにちは]", sink.writes)
	}
	if cap.captured == nil || cap.captured.ID != 42 {
		t.Error("capturer did not receive the located window")
	}
}

func TestRunNoWindowIsNotFound(t *testing.T) {
	sink := &memorySink{}
	p := &Pipeline{
		Windows:   fakeSource{wins: []window.Info{{ID: 9, Owner: "Finder", Layer: 0}}},
		Capturer:  &fakeCapturer{},
		Recognize: staticRecognizer("never", nil),
		Sink:      sink,
		App:       "duckstation",
	}

	_, err := p.Run(context.Background())
	if !errors.Is(err, ErrNoWindow) {
		t.Fatalf("err = %v, want ErrNoWindow", err)
	}
	if len(sink.writes) != 0 {
		t.Error("no window matched but clipboard was written")
	}
}

func TestRunCaptureFailureAborts(t *testing.T) {
	sink := &memorySink{}
	p := &Pipeline{
		Windows:   fakeSource{wins: []window.Info{gameWindow}},
		Capturer:  &fakeCapturer{err: errors.New("screencapture exit 1")},
		Recognize: staticRecognizer("never", nil),
		Sink:      sink,
		App:       "duck",
	}

	if _, err := p.Run(context.Background()); err == nil {
		t.Fatal("expected capture error")
	}
	if len(sink.writes) != 0 {
		t.Error("capture failed but clipboard was written")
	}
}

func TestRunEmptyTextIsErrNoText(t *testing.T) {
	sink := &memorySink{}
	p := &Pipeline{
		Windows:   fakeSource{wins: []window.Info{gameWindow}},
		Capturer:  &fakeCapturer{},
		Recognize: staticRecognizer("", nil),
		Sink:      sink,
		App:       "duck",
	}

	if _, err := p.Run(context.Background()); !errors.Is(err, ErrNoText) {
		t.Fatalf("err = %v, want ErrNoText", err)
	}
	if len(sink.writes) != 0 {
		t.Error("no text recognized but clipboard was written")
	}
}

func TestRunCleanupReducesToEmpty(t *testing.T) {
	// Recognized text that is pure overlay junk becomes empty after
	// cleanup, and that must surface as the no-text outcome.
	p := &Pipeline{
		Windows:   fakeSource{wins: []window.Info{gameWindow}},
		Capturer:  &fakeCapturer{},
		Recognize: staticRecognizer("60FPS 1920x1080", nil),
		Sink:      &memorySink{},
		App:       "duck",
		OCR:       config.OCR{CleanupHUD: true},
	}

	if _, err := p.Run(context.Background()); !errors.Is(err, ErrNoText) {
		t.Fatalf("err = %v, want ErrNoText", err)
	}
}

func TestRunCleanupDisabledKeepsOverlayText(t *testing.T) {
	sink := &memorySink{}
	p := &Pipeline{
		Windows:   fakeSource{wins: []window.Info{gameWindow}},
		Capturer:  &fakeCapturer{},
		Recognize: staticRecognizer("60FPS hello", nil),
		Sink:      sink,
		App:       "duck",
		OCR:       config.OCR{CleanupHUD: false},
	}

	res, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Text != "60FPS hello" {
		t.Errorf("Text = %q, want raw %q", res.Text, "60FPS hello")
	}
	if len(sink.writes) != 1 {
		t.Errorf("clipboard writes = %d, want 1", len(sink.writes))
	}
}

func TestRunSinkFailureIsFatal(t *testing.T) {
	p := &Pipeline{
		Windows:   fakeSource{wins: []window.Info{gameWindow}},
		Capturer:  &fakeCapturer{},
		Recognize: staticRecognizer("text", nil),
		Sink:      &memorySink{err: errors.New("clipboard denied")},
		App:       "duck",
	}

	if _, err := p.Run(context.Background()); err == nil {
		t.Fatal("expected clipboard error to propagate")
	}
}

func TestRunWindowListFailure(t *testing.T) {
	p := &Pipeline{
		Windows:   fakeSource{err: errors.New("query failed")},
		Capturer:  &fakeCapturer{},
		Recognize: staticRecognizer("text", nil),
		Sink:      &memorySink{},
		App:       "duck",
	}

	if _, err := p.Run(context.Background()); err == nil {
		t.Fatal("expected window list error")
	}
}

func TestRunFileWithCrop(t *testing.T) {
	dir := t.TempDir()
	src := dir + "/input.png"
	if err := imgproc.EncodePNG(src, image.NewRGBA(image.Rect(0, 0, 100, 100))); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	var seenPath string
	crop := config.CropRect{X0: 0.05, Y0: 0.62, X1: 0.95, Y1: 0.95}
	p := &Pipeline{
		Recognize: func(ctx context.Context, imagePath string, cfg config.OCR) (string, error) {
			seenPath = imagePath
			return "dialogue", nil
		},
		OCR: config.OCR{Crop: &crop, CleanupHUD: true},
	}

	text, err := p.RunFile(context.Background(), src)
	if err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if text != "dialogue" {
		t.Errorf("text = %q, want dialogue", text)
	}
	if seenPath == src {
		t.Error("recognizer saw the uncropped source; crop stage was skipped")
	}
}

func TestRunFileWithoutCropPassesSourceThrough(t *testing.T) {
	dir := t.TempDir()
	src := dir + "/input.png"
	if err := imgproc.EncodePNG(src, image.NewRGBA(image.Rect(0, 0, 10, 10))); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	var seenPath string
	p := &Pipeline{
		Recognize: func(ctx context.Context, imagePath string, cfg config.OCR) (string, error) {
			seenPath = imagePath
			return "", nil
		},
	}

	text, err := p.RunFile(context.Background(), src)
	if err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if text != "" {
		t.Errorf("text = %q, want empty (valid no-text outcome)", text)
	}
	if seenPath != src {
		t.Errorf("recognizer saw %q, want the source path %q", seenPath, src)
	}
}
