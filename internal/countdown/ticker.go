package countdown

import (
	"context"
	"time"
)

// Tick streams the remaining-time breakdown for date once per second until
// ctx is cancelled. The first snapshot is emitted immediately. The returned
// channel is closed when the ticker stops, so consumers never leak a
// recurring callback.
//
// Tick is a pure reader over the calculator; it never mutates anything.
func (c *Calculator) Tick(ctx context.Context, date string) <-chan Breakdown {
	return c.TickEvery(ctx, date, time.Second)
}

// TickEvery is Tick with a configurable period, mainly for tests.
func (c *Calculator) TickEvery(ctx context.Context, date string, period time.Duration) <-chan Breakdown {
	out := make(chan Breakdown, 1)
	out <- c.Until(date)

	go func() {
		defer close(out)

		ticker := time.NewTicker(period)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				select {
				case out <- c.Until(date):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
