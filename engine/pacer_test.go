package engine

import (
	"context"
	"testing"
	"time"
)

func TestPacerDefaults(t *testing.T) {
	p := NewPacer(PacerConfig{})
	if p.Interval() != 16*time.Millisecond {
		t.Errorf("default interval = %v, want 16ms", p.Interval())
	}

	p = NewPacer(PacerConfig{Interval: 33 * time.Millisecond})
	if p.Interval() != 33*time.Millisecond {
		t.Errorf("interval = %v, want 33ms", p.Interval())
	}
}

func TestPacerWaitSpacesFrames(t *testing.T) {
	interval := 20 * time.Millisecond
	p := NewPacer(PacerConfig{Interval: interval})

	start := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := p.Wait(context.Background()); err != nil {
			t.Fatalf("Wait() error = %v", err)
		}
	}
	elapsed := time.Since(start)

	if elapsed < 3*interval-5*time.Millisecond {
		t.Errorf("3 frames took %v, want at least ~%v", elapsed, 3*interval)
	}
}

func TestPacerWaitReportsDelta(t *testing.T) {
	interval := 10 * time.Millisecond
	p := NewPacer(PacerConfig{Interval: interval})

	dt, err := p.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if dt < interval/2 || dt > 10*interval {
		t.Errorf("delta = %v, want near %v", dt, interval)
	}
}

func TestPacerWaitHonorsCancellation(t *testing.T) {
	p := NewPacer(PacerConfig{Interval: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Wait(ctx); err != context.Canceled {
		t.Errorf("Wait() error = %v, want context.Canceled", err)
	}
}

func TestPacerSlowFrameDoesNotSpiral(t *testing.T) {
	interval := 5 * time.Millisecond
	p := NewPacer(PacerConfig{Interval: interval})

	// Miss several deadlines.
	time.Sleep(4 * interval)

	// The pacer should not burn through the missed slots back to back:
	// after one immediate wake the next wait is a full interval again.
	if _, err := p.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}

	start := time.Now()
	if _, err := p.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if waited := time.Since(start); waited < interval/2 {
		t.Errorf("second wait returned after %v, want about %v", waited, interval)
	}
}

func TestPacerReset(t *testing.T) {
	p := NewPacer(PacerConfig{Interval: 5 * time.Millisecond})
	time.Sleep(10 * time.Millisecond)
	p.Reset()

	start := time.Now()
	if _, err := p.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if waited := time.Since(start); waited < 2*time.Millisecond {
		t.Errorf("wait after reset returned after %v, want a full interval", waited)
	}
}
