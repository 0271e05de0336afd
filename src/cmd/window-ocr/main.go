// window-ocr captures a macOS window (or reads a sample image), runs OCR
// on it and copies the text to the clipboard.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"window-ocr/src/capture"
	"window-ocr/src/clipboard"
	"window-ocr/src/config"
	"window-ocr/src/logutil"
	"window-ocr/src/pipeline"
	"window-ocr/src/window"
)

const (
	exitMissingFilters = 2
	exitWindowList     = 3
	exitNoMatch        = 4
	exitNoWindowID     = 5
	exitCaptureFailed  = 6
	exitNoText         = 7
)

type options struct {
	image          string
	app            string
	title          string
	noninteractive bool
	framework      string
	level          string
	lang           string
	extraLangs     []string
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	env := config.LoadEnv()

	opts := &options{}
	var code int
	cmd := &cobra.Command{
		Use:           "window-ocr",
		Short:         "OCR a window capture (or a sample image) and copy the text to the clipboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			code, err = runOCR(cmd.Context(), opts)
			return err
		},
	}
	cmd.Flags().StringVar(&opts.image, "image", "", "Path to a PNG/JPG to OCR (test mode; skips window capture)")
	cmd.Flags().StringVar(&opts.app, "app", "", "Substring of app/owner name to filter (e.g. DuckStation)")
	cmd.Flags().StringVar(&opts.title, "title", "", "Substring of window title to filter")
	cmd.Flags().BoolVar(&opts.noninteractive, "noninteractive", false, "Auto-pick the first matching window (requires --app and/or --title)")
	cmd.Flags().StringVar(&opts.framework, "framework", "auto", "OCR backend: auto, livetext or vision ('auto' tries livetext then falls back to vision)")
	cmd.Flags().StringVar(&opts.level, "level", "accurate", "Recognition level for the vision backend: fast or accurate")
	cmd.Flags().StringVar(&opts.lang, "lang", env.Lang, "Primary language tag (e.g. ja-JP, en-US)")
	cmd.Flags().StringArrayVar(&opts.extraLangs, "extra-lang", nil, "Additional language tags (repeatable)")

	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if code == 0 {
			code = 1
		}
	}
	return code
}

func runOCR(ctx context.Context, opts *options) (int, error) {
	backend, err := config.ParseBackend(opts.framework, true)
	if err != nil {
		return 1, err
	}
	level, err := config.ParseLevel(opts.level)
	if err != nil {
		return 1, err
	}

	p := &pipeline.Pipeline{
		OCR: config.OCR{
			Backend:    backend,
			Level:      level,
			Languages:  append([]string{opts.lang}, opts.extraLangs...),
			CleanupHUD: true,
		},
	}

	if opts.image != "" {
		return ocrImageFile(ctx, p, opts.image)
	}
	return ocrWindow(ctx, p, opts)
}

// ocrImageFile is test mode: recognize an existing file, no capture.
func ocrImageFile(ctx context.Context, p *pipeline.Pipeline, image string) (int, error) {
	imgPath, err := filepath.Abs(image)
	if err != nil {
		return 1, err
	}
	if _, err := os.Stat(imgPath); err != nil {
		return exitMissingFilters, fmt.Errorf("--image not found: %s", imgPath)
	}

	text, err := p.RunFile(ctx, imgPath)
	if err != nil {
		return 1, err
	}
	return finish(text)
}

func ocrWindow(ctx context.Context, p *pipeline.Pipeline, opts *options) (int, error) {
	if opts.noninteractive && opts.app == "" && opts.title == "" {
		return exitMissingFilters, fmt.Errorf("--noninteractive requires --app and/or --title")
	}

	wins, err := window.NewSource().List()
	if err != nil {
		return exitWindowList, fmt.Errorf("failed to list windows (grant Screen Recording permission to your terminal): %w", err)
	}

	matched := window.Filter(wins, opts.app, opts.title)
	if len(matched) == 0 {
		return exitNoMatch, fmt.Errorf("no windows matched your filters")
	}

	var chosen window.Info
	if opts.noninteractive {
		chosen = matched[0]
	} else {
		chosen, err = pickInteractively(matched, os.Stdin, os.Stdout)
		if err != nil {
			return 1, err
		}
	}
	if chosen.ID == 0 {
		return exitNoWindowID, fmt.Errorf("selected window has no capturable identifier")
	}

	scratch, err := os.MkdirTemp("", "window-ocr-")
	if err != nil {
		return 1, err
	}
	defer os.RemoveAll(scratch)

	capPath := filepath.Join(scratch, "capture.png")
	if err := capture.NewWindowCapturer().CaptureWindow(ctx, chosen, capPath); err != nil {
		return exitCaptureFailed, err
	}

	text, err := p.RunFile(ctx, capPath)
	if err != nil {
		return 1, err
	}
	return finish(text)
}

func finish(text string) (int, error) {
	if text == "" {
		return exitNoText, fmt.Errorf("no text recognized")
	}
	if err := (clipboard.System{}).Write(text); err != nil {
		return 1, err
	}
	fmt.Printf("OCR OK. Copied %d chars to clipboard.\n", utf8.RuneCountInString(text))
	fmt.Printf("Preview: %s\n", logutil.Preview(text, 200))
	return 0, nil
}
