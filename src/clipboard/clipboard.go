// Package clipboard is the pipeline's terminal sink: the system
// clipboard, last-write-wins.
package clipboard

import (
	"sync"

	"golang.design/x/clipboard"
)

var (
	initOnce sync.Once
	initErr  error
	writeMu  sync.Mutex
)

// Init prepares the system clipboard. Safe to call more than once.
func Init() error {
	initOnce.Do(func() {
		initErr = clipboard.Init()
	})
	return initErr
}

// Write replaces the clipboard contents with the UTF-8 text. The mutex
// guards against interleaved writes from concurrent callers.
func Write(text string) error {
	if err := Init(); err != nil {
		return err
	}
	writeMu.Lock()
	defer writeMu.Unlock()
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// Sink is the narrow interface the pipeline writes through, so tests can
// observe output without touching the OS clipboard.
type Sink interface {
	Write(text string) error
}

// System is the real clipboard Sink.
type System struct{}

func (System) Write(text string) error { return Write(text) }
