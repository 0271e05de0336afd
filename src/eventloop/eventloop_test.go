package eventloop

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"window-ocr/src/pipeline"
)

// fakeRunner records invocations and flags any overlap between runs.
type fakeRunner struct {
	runs    atomic.Int32
	inRun   atomic.Bool
	overlap atomic.Bool
	err     error
	done    chan struct{} // closed targets notify here per run
}

func (f *fakeRunner) Run(ctx context.Context) (pipeline.Result, error) {
	if !f.inRun.CompareAndSwap(false, true) {
		f.overlap.Store(true)
	}
	time.Sleep(time.Millisecond)
	err := f.err
	f.inRun.Store(false)
	f.runs.Add(1)
	if f.done != nil {
		f.done <- struct{}{}
	}
	if err != nil {
		return pipeline.Result{}, err
	}
	return pipeline.Result{Text: "ok"}, nil
}

func waitRuns(t *testing.T, done chan struct{}, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for run %d of %d", i+1, n)
		}
	}
}

func TestTriggersRunSeriallyInOrder(t *testing.T) {
	runner := &fakeRunner{done: make(chan struct{})}
	loop := New(runner, "")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)

	for i := 0; i < 3; i++ {
		loop.Trigger()
	}
	waitRuns(t, runner.done, 3)

	if got := runner.runs.Load(); got != 3 {
		t.Errorf("runs = %d, want 3", got)
	}
	if runner.overlap.Load() {
		t.Error("pipeline runs overlapped; expected strict serialization")
	}
}

func TestFailedRunDoesNotStopLoop(t *testing.T) {
	runner := &fakeRunner{done: make(chan struct{}), err: errors.New("capture failed")}
	loop := New(runner, "")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)

	loop.Trigger()
	waitRuns(t, runner.done, 1)

	// The loop must still be alive and serving triggers.
	runner.err = pipeline.ErrNoText
	loop.Trigger()
	waitRuns(t, runner.done, 1)

	if got := runner.runs.Load(); got != 2 {
		t.Errorf("runs = %d, want 2", got)
	}
}

func TestRunReturnsOnCancel(t *testing.T) {
	loop := New(&fakeRunner{}, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	errc := make(chan error, 1)
	go func() { errc <- loop.Run(ctx) }()

	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestOnStateObservesTransitions(t *testing.T) {
	runner := &fakeRunner{done: make(chan struct{})}
	loop := New(runner, "")

	states := make(chan bool, 4)
	loop.OnState = func(running bool) { states <- running }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)

	loop.Trigger()
	waitRuns(t, runner.done, 1)

	want := []bool{true, false}
	for i, w := range want {
		select {
		case got := <-states:
			if got != w {
				t.Errorf("state[%d] = %v, want %v", i, got, w)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("missing state transition %d", i)
		}
	}
}
