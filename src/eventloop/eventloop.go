// Package eventloop is the daemon's coordinator: one goroutine owns the
// hotkey hook and only enqueues trigger signals; the loop's own thread
// dequeues and runs the pipeline, one trigger at a time. The capture
// utility and the OCR engines are exclusive OS resources, so at most one
// pipeline execution is ever in flight.
package eventloop

import (
	"context"
	"errors"
	"log"
	"unicode/utf8"

	"window-ocr/src/afterrun"
	"window-ocr/src/hotkey"
	"window-ocr/src/pipeline"
)

// A trigger carries no payload; all parameters are bound at startup.
const triggerQueueDepth = 64

// Runner is one pipeline invocation. *pipeline.Pipeline implements it.
type Runner interface {
	Run(ctx context.Context) (pipeline.Result, error)
}

// Loop serializes triggers onto a single worker.
type Loop struct {
	runner   Runner
	triggers chan struct{}
	afterCmd string

	// OnState, when set, observes Idle→Running→Idle transitions. Used by
	// the tray tooltip.
	OnState func(running bool)
}

// New creates a loop around the pipeline. afterCmd, when non-empty, runs
// after every successful copy.
func New(runner Runner, afterCmd string) *Loop {
	return &Loop{
		runner:   runner,
		triggers: make(chan struct{}, triggerQueueDepth),
		afterCmd: afterCmd,
	}
}

// Trigger enqueues one unit of work. Triggers are processed strictly in
// arrival order and never dropped; if the queue is ever full the send
// blocks the caller (the hook goroutine) until the worker catches up.
func (l *Loop) Trigger() {
	l.triggers <- struct{}{}
}

// StartHotkey registers the global chord and routes presses into the
// queue. The hook goroutine never performs capture or OCR work itself.
func (l *Loop) StartHotkey(combo string) error {
	return hotkey.Listen(combo, func() {
		log.Printf("[daemon] hotkey triggered")
		l.Trigger()
	})
}

// Run blocks processing triggers until ctx is cancelled. A failing run is
// logged and the loop returns to idle — no single trigger can kill the
// daemon.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.triggers:
			l.setState(true)
			l.runOnce(ctx)
			l.setState(false)
		}
	}
}

func (l *Loop) setState(running bool) {
	if l.OnState != nil {
		l.OnState(running)
	}
}

func (l *Loop) runOnce(ctx context.Context) {
	res, err := l.runner.Run(ctx)
	switch {
	case errors.Is(err, pipeline.ErrNoWindow):
		log.Printf("[daemon] %v", err)
	case errors.Is(err, pipeline.ErrNoText):
		log.Printf("[daemon] OCR: no text")
	case err != nil:
		log.Printf("[daemon] run failed: %v", err)
	default:
		log.Printf("[daemon] ok | %s | %d chars", res.Timings, utf8.RuneCountInString(res.Text))
		if l.afterCmd != "" {
			if err := afterrun.Run(l.afterCmd); err != nil {
				log.Printf("[daemon] after command failed: %v", err)
			}
		}
	}
}
