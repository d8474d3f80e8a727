package ticker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/activibe/pkg/core/stores"
	"github.com/jakechorley/activibe/pkg/seed"
)

// startDriver runs d in the background and waits until its ticker is registered
func startDriver(t *testing.T, clock *clockwork.FakeClock, d *Driver, tick func()) (context.CancelFunc, <-chan error) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- d.Run(ctx, tick)
	}()

	waitCtx, waitCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer waitCancel()
	require.NoError(t, clock.BlockUntilContext(waitCtx, 1))

	return cancel, done
}

func TestNewDriver_Defaults(t *testing.T) {
	d := NewDriver(nil, 0, zap.NewNop())

	assert.Equal(t, DefaultInterval, d.Interval())
	assert.NotNil(t, d.clock)
}

func TestDriver_TicksOncePerInterval(t *testing.T) {
	clock := clockwork.NewFakeClock()
	d := NewDriver(clock, time.Second, zap.NewNop())

	var ticks atomic.Int64
	ticked := make(chan struct{}, 10)
	cancel, done := startDriver(t, clock, d, func() {
		ticks.Add(1)
		ticked <- struct{}{}
	})

	for i := 0; i < 3; i++ {
		clock.Advance(time.Second)
		select {
		case <-ticked:
		case <-time.After(2 * time.Second):
			t.Fatalf("tick %d not delivered", i+1)
		}
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.Equal(t, int64(3), ticks.Load())
}

func TestDriver_NoTickBeforeInterval(t *testing.T) {
	clock := clockwork.NewFakeClock()
	d := NewDriver(clock, time.Second, zap.NewNop())

	var ticks atomic.Int64
	cancel, done := startDriver(t, clock, d, func() { ticks.Add(1) })

	clock.Advance(500 * time.Millisecond)
	cancel()
	<-done

	assert.Zero(t, ticks.Load())
}

func TestDriver_NilTick(t *testing.T) {
	d := NewDriver(clockwork.NewFakeClock(), time.Second, zap.NewNop())

	err := d.Run(context.Background(), nil)
	assert.Error(t, err)
}

func TestDriver_AdvancesActiveEventTimer(t *testing.T) {
	clock := clockwork.NewFakeClock()
	d := NewDriver(clock, time.Second, zap.NewNop())
	store := stores.NewActiveEventStore(seed.Drive(), func() string { return "checkin-test" })
	store.SimulateEntry()

	ticked := make(chan struct{}, 10)
	cancel, done := startDriver(t, clock, d, func() {
		store.IncrementTimer()
		ticked <- struct{}{}
	})
	defer func() {
		cancel()
		<-done
	}()

	advance := func() {
		clock.Advance(time.Second)
		select {
		case <-ticked:
		case <-time.After(2 * time.Second):
			t.Fatal("tick not delivered")
		}
	}

	advance()
	advance()
	store.SimulateExit()
	advance()

	assert.Equal(t, 2, store.Snapshot().TimerSeconds)
}
