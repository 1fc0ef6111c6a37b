package backoff

import (
	"context"
	"time"
)

// Backoff sleeps for a linearly growing interval between retries,
// waking early when the context ends. Ledger polling wants a steady
// cadence rather than an exponential one, block production does not
// speed up because we wait longer.
type Backoff struct {
	LastDuration time.Duration
	NextDuration time.Duration
	start        time.Duration
	limit        time.Duration
	count        int
}

// NewLinear grows the interval by start each round, capped at limit.
// A zero limit leaves the growth uncapped.
func NewLinear(start, limit time.Duration) *Backoff {
	b := &Backoff{start: start, limit: limit}
	b.Reset()
	return b
}

func (b *Backoff) Reset() {
	b.count = 0
	b.LastDuration = 0
	b.NextDuration = b.next()
}

// Backoff blocks for NextDuration, then advances to the next interval.
// It returns the context error when the wait was cut short.
func (b *Backoff) Backoff(ctx context.Context) error {
	timer := time.NewTimer(b.NextDuration)
	defer timer.Stop()

	select {
	case <-timer.C:
		b.count++
		b.LastDuration = b.NextDuration
		b.NextDuration = b.next()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Backoff) next() time.Duration {
	d := time.Duration(b.count+1) * b.start
	if b.limit > 0 && d > b.limit {
		d = b.limit
	}
	return d
}
