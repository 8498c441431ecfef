package engine

import (
	"context"
	"sync"
	"time"
)

// PacerConfig configures the frame pacer.
type PacerConfig struct {
	// Interval is the target time between frames.
	// Default: 16ms
	Interval time.Duration
}

// Pacer spaces frames at a fixed interval. When a frame overruns its
// slot the pacer does not sleep and does not try to catch up; the
// next deadline is measured from now, so a slow frame costs exactly
// its own overrun.
type Pacer struct {
	config PacerConfig

	mu   sync.Mutex
	next time.Time
}

// NewPacer creates a new pacer.
func NewPacer(config PacerConfig) *Pacer {
	// Apply defaults
	if config.Interval <= 0 {
		config.Interval = 16 * time.Millisecond
	}

	return &Pacer{
		config: config,
		next:   time.Now().Add(config.Interval),
	}
}

// Interval returns the configured frame interval.
func (p *Pacer) Interval() time.Duration {
	return p.config.Interval
}

// Wait blocks until the next frame deadline or context cancellation.
// It returns the time since the previous deadline, which is the frame
// delta the caller should report.
func (p *Pacer) Wait(ctx context.Context) (time.Duration, error) {
	p.mu.Lock()
	deadline := p.next
	p.mu.Unlock()

	now := time.Now()
	if wait := deadline.Sub(now); wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case now = <-timer.C:
		}
	}

	p.mu.Lock()
	delta := now.Sub(p.next.Add(-p.config.Interval))
	p.next = now.Add(p.config.Interval)
	p.mu.Unlock()

	if delta < 0 {
		delta = p.config.Interval
	}
	return delta, nil
}

// Reset restarts pacing from now.
func (p *Pacer) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.next = time.Now().Add(p.config.Interval)
}
