package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunOnce_RecoversPanic(t *testing.T) {
	s := New(nil, nil)

	panicking := func(ctx context.Context) error {
		panic("model service exploded")
	}

	// must not escape
	s.runOnce("panicking job", panicking)
}

func TestRunOnce_ErrorDoesNotStopFutureRuns(t *testing.T) {
	var runs atomic.Int32
	failing := func(ctx context.Context) error {
		runs.Add(1)
		return errors.New("boom")
	}

	s := New(failing, nil)
	s.runOnce("failing job", failing)
	s.runOnce("failing job", failing)

	if runs.Load() != 2 {
		t.Errorf("expected 2 runs, got %d", runs.Load())
	}
}

func TestStop_EndsLoops(t *testing.T) {
	var runs atomic.Int32
	job := func(ctx context.Context) error {
		runs.Add(1)
		return nil
	}

	s := New(job, job)
	s.Start()

	// both jobs fire once immediately
	deadline := time.After(2 * time.Second)
	for runs.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("expected 2 startup runs, got %d", runs.Load())
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}

	s.Stop()
}
