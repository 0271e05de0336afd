// Package tray puts an optional status item in the menu bar. The daemon
// works fine without it; the tray only mirrors state and offers a manual
// trigger and quit.
package tray

import (
	"log"

	"github.com/getlantern/systray"
)

const appTitle = "Window OCR"

// Options wires the menu items back into the daemon.
type Options struct {
	// OnCapture fires when "Capture Now" is clicked. It must only enqueue
	// a trigger, never block.
	OnCapture func()
	// OnQuit fires after the user picks Quit, before the tray loop exits.
	OnQuit func()
}

// Run starts the systray main loop and blocks until Quit. On macOS this
// must be called from the process's main thread.
func Run(opts Options) {
	systray.Run(func() { onReady(opts) }, opts.OnQuit)
}

// Quit tears down the tray loop and unblocks Run.
func Quit() {
	systray.Quit()
}

// SetRunning flips the tooltip between idle and running.
func SetRunning(running bool) {
	if running {
		systray.SetTooltip(appTitle + " — running")
	} else {
		systray.SetTooltip(appTitle + " — idle")
	}
}

func onReady(opts Options) {
	systray.SetIcon(iconPNG())
	systray.SetTitle(appTitle)
	systray.SetTooltip(appTitle + " — idle")

	mCapture := systray.AddMenuItem("Capture Now", "Capture and OCR the target window")
	mQuit := systray.AddMenuItem("Quit", "Stop the daemon")

	go func() {
		for {
			select {
			case <-mCapture.ClickedCh:
				log.Printf("[tray] capture requested")
				if opts.OnCapture != nil {
					opts.OnCapture()
				}
			case <-mQuit.ClickedCh:
				systray.Quit()
				return
			}
		}
	}()
}
