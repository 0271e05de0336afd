// Resident OCR daemon: global hotkey -> capture window -> OCR -> clipboard.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"window-ocr/src/capture"
	"window-ocr/src/clipboard"
	"window-ocr/src/config"
	"window-ocr/src/eventloop"
	"window-ocr/src/hotkey"
	"window-ocr/src/logutil"
	"window-ocr/src/pipeline"
	"window-ocr/src/tray"
	"window-ocr/src/window"
)

type multiFlag []string

func (m *multiFlag) String() string { return "" }
func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

func main() {
	// The tray loop, when enabled, must own the process's main thread.
	runtime.LockOSThread()

	env := config.LoadEnv()

	app := flag.String("app", env.App, "Owner/app substring to match")
	title := flag.String("title", env.Title, "Optional window title substring")
	hotkeyFlag := flag.String("hotkey", env.Hotkey, "Global hotkey chord (e.g. cmd+shift+o)")
	framework := flag.String("framework", "livetext", "OCR backend: auto, livetext or vision")
	level := flag.String("level", "fast", "Recognition level for the vision backend: fast or accurate")
	lang := flag.String("lang", env.Lang, "Primary language tag (e.g. ja-JP)")
	var extraLangs multiFlag
	flag.Var(&extraLangs, "extra-lang", "Additional language tags (repeatable)")
	crop := flag.String("crop", "", "Normalized crop x0,y0,x1,y1")
	noCleanup := flag.Bool("no-cleanup", false, "Disable overlay cleanup")
	after := flag.String("after", "", "Optional command to run after copying text")
	useTray := flag.Bool("tray", false, "Show a menu bar status item")
	flag.Parse()

	logutil.Setup(env.EnableFileLogging)

	backend, err := config.ParseBackend(*framework, true)
	if err != nil {
		log.Fatalf("[daemon] %v", err)
	}
	lvl, err := config.ParseLevel(*level)
	if err != nil {
		log.Fatalf("[daemon] %v", err)
	}

	ocr := config.OCR{
		Backend:    backend,
		Level:      lvl,
		Languages:  append([]string{*lang}, extraLangs...),
		CleanupHUD: !*noCleanup,
	}
	if *crop != "" {
		rect, err := config.ParseCrop(*crop)
		if err != nil {
			log.Fatalf("[daemon] %v", err)
		}
		ocr.Crop = &rect
	}

	if err := clipboard.Init(); err != nil {
		log.Fatalf("[daemon] clipboard init: %v", err)
	}

	pipe := &pipeline.Pipeline{
		Windows:  window.NewSource(),
		Capturer: capture.NewWindowCapturer(),
		App:      *app,
		Title:    *title,
		OCR:      ocr,
	}
	loop := eventloop.New(pipe, *after)

	if err := loop.StartHotkey(*hotkeyFlag); err != nil {
		log.Fatalf("[daemon] %v", err)
	}

	log.Printf("[daemon] running. hotkey=%s (needs Accessibility permission)", *hotkeyFlag)
	log.Printf("[daemon] watching for app=%q", *app)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if *useTray {
		loop.OnState = tray.SetRunning
		go func() {
			<-ctx.Done()
			tray.Quit()
		}()
		go func() {
			_ = loop.Run(ctx)
		}()
		// Blocks until Quit (menu item or signal above).
		tray.Run(tray.Options{
			OnCapture: loop.Trigger,
			OnQuit:    cancel,
		})
	} else {
		_ = loop.Run(ctx)
	}

	// Release the OS hook before exit.
	hotkey.Stop()
	log.Printf("[daemon] stopped")
}
