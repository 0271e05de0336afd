// image-ocr recognizes text in an existing image file and copies it to
// the clipboard. No window capture is involved.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"window-ocr/src/clipboard"
	"window-ocr/src/config"
	"window-ocr/src/logutil"
	"window-ocr/src/pipeline"
)

const (
	exitImageMissing = 2
	exitNoText       = 3
)

type options struct {
	image      string
	framework  string
	level      string
	lang       string
	extraLangs []string
	crop       string
	noCleanup  bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	env := config.LoadEnv()

	opts := &options{}
	var code int
	cmd := &cobra.Command{
		Use:           "image-ocr",
		Short:         "OCR an image file and copy the text to the clipboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			code, err = runOCR(cmd.Context(), opts)
			return err
		},
	}
	cmd.Flags().StringVar(&opts.image, "image", "", "Path to PNG/JPG to OCR")
	cmd.Flags().StringVar(&opts.framework, "framework", "livetext", "OCR backend: vision or livetext")
	cmd.Flags().StringVar(&opts.level, "level", "fast", "Recognition level for the vision backend: fast or accurate")
	cmd.Flags().StringVar(&opts.lang, "lang", env.Lang, "Primary language tag (e.g. ja-JP, en-US)")
	cmd.Flags().StringArrayVar(&opts.extraLangs, "extra-lang", nil, "Additional language tags (repeatable)")
	cmd.Flags().StringVar(&opts.crop, "crop", "", "Normalized crop x0,y0,x1,y1")
	cmd.Flags().BoolVar(&opts.noCleanup, "no-cleanup", false, "Disable overlay cleanup")
	_ = cmd.MarkFlagRequired("image")

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
	backend, err := config.ParseBackend(opts.framework, false)
	if err != nil {
		return 1, err
	}
	level, err := config.ParseLevel(opts.level)
	if err != nil {
		return 1, err
	}

	ocr := config.OCR{
		Backend:    backend,
		Level:      level,
		Languages:  append([]string{opts.lang}, opts.extraLangs...),
		CleanupHUD: !opts.noCleanup,
	}
	if opts.crop != "" {
		rect, err := config.ParseCrop(opts.crop)
		if err != nil {
			return 1, err
		}
		ocr.Crop = &rect
	}

	imgPath, err := filepath.Abs(opts.image)
	if err != nil {
		return 1, err
	}
	if _, err := os.Stat(imgPath); err != nil {
		return exitImageMissing, fmt.Errorf("not found: %s", imgPath)
	}

	p := &pipeline.Pipeline{OCR: ocr}
	text, err := p.RunFile(ctx, imgPath)
	if err != nil {
		return 1, err
	}
	if text == "" {
		return exitNoText, fmt.Errorf("no text recognized")
	}

	if err := (clipboard.System{}).Write(text); err != nil {
		return 1, err
	}

	fmt.Printf("OCR OK. Copied %d chars.\n", utf8.RuneCountInString(text))
	fmt.Printf("Preview: %s\n", logutil.Preview(text, 200))
	return 0, nil
}
