// Package ticker drives periodic callbacks from an injected clock, so code that
// advances timers can be tested without real time passing.
package ticker

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

const DefaultInterval = time.Second

// Driver calls a function once per interval until its context is cancelled
type Driver struct {
	clock    clockwork.Clock
	interval time.Duration
	logger   *zap.Logger
}

// NewDriver creates a driver. A nil clock uses the real clock and a
// non-positive interval falls back to DefaultInterval.
func NewDriver(clock clockwork.Clock, interval time.Duration, logger *zap.Logger) *Driver {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Driver{
		clock:    clock,
		interval: interval,
		logger:   logger,
	}
}

func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Run blocks, calling tick on every interval. It returns ctx.Err() once the
// context is done.
func (d *Driver) Run(ctx context.Context, tick func()) error {
	if tick == nil {
		return fmt.Errorf("ticker: nil tick function")
	}

	t := d.clock.NewTicker(d.interval)
	defer t.Stop()

	d.logger.Debug("Clock driver started", zap.Duration("interval", d.interval))

	for {
		select {
		case <-ctx.Done():
			d.logger.Debug("Clock driver stopped", zap.Error(ctx.Err()))
			return ctx.Err()
		case <-t.Chan():
			tick()
		}
	}
}
