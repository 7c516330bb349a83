package core

import (
	"context"
	"time"
)

// Pacer spaces successive display refreshes by a fixed delay.
type Pacer struct {
	delay time.Duration
	last  time.Time
	now   func() time.Time
}

// NewPacer constructs a Pacer waiting delay between refreshes. A negative
// delay is treated as zero.
func NewPacer(delay time.Duration) *Pacer {
	p := &Pacer{now: time.Now}
	p.SetDelay(delay)
	return p
}

// SetDelay changes the refresh delay.
func (p *Pacer) SetDelay(delay time.Duration) {
	if delay < 0 {
		delay = 0
	}
	p.delay = delay
}

// Delay returns the configured refresh delay.
func (p *Pacer) Delay() time.Duration { return p.delay }

// Wait blocks until delay has elapsed since the previous Wait returned, or
// ctx is done. The first call waits the full delay.
func (p *Pacer) Wait(ctx context.Context) error {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
	}
	remaining := p.delay - now.Sub(p.last)
	if remaining > 0 {
		t := time.NewTimer(remaining)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}
	p.last = p.now()
	return nil
}
