package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppliesDefaultInterval(t *testing.T) {
	poller := New(Options{})
	assert.Equal(t, DefaultInterval, poller.Interval())
	assert.False(t, poller.Running())
}

func TestPollerStopsWhenTickReturnsFalse(t *testing.T) {
	poller := New(Options{Interval: 5 * time.Millisecond})
	var calls atomic.Int32

	poller.Start(context.Background(), func() bool {
		return calls.Add(1) < 3
	})

	require.Eventually(t, func() bool { return !poller.Running() }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(3), calls.Load())
}

func TestPollerStop(t *testing.T) {
	poller := New(Options{Interval: 5 * time.Millisecond})
	var calls atomic.Int32

	poller.Start(context.Background(), func() bool {
		calls.Add(1)
		return true
	})
	require.Eventually(t, func() bool { return calls.Load() > 0 }, time.Second, 5*time.Millisecond)

	poller.Stop()
	poller.Stop()
	require.Eventually(t, func() bool { return !poller.Running() }, time.Second, 5*time.Millisecond)

	stopped := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, calls.Load())
}

func TestPollerStopsOnContextCancel(t *testing.T) {
	poller := New(Options{Interval: 5 * time.Millisecond})
	ctx, cancel := context.WithCancel(context.Background())

	poller.Start(ctx, func() bool { return true })
	require.True(t, poller.Running())
	cancel()

	require.Eventually(t, func() bool { return !poller.Running() }, time.Second, 5*time.Millisecond)
}

func TestPollerUsesDispatch(t *testing.T) {
	var mu sync.Mutex
	dispatched := 0
	poller := New(Options{
		Interval: 5 * time.Millisecond,
		Dispatch: func(fn func()) {
			mu.Lock()
			dispatched++
			mu.Unlock()
			fn()
		},
	})

	poller.Start(context.Background(), func() bool { return false })
	require.Eventually(t, func() bool { return !poller.Running() }, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, dispatched)
}

func TestPollerRestartReplacesLoop(t *testing.T) {
	poller := New(Options{Interval: 5 * time.Millisecond})
	var first, second atomic.Int32

	poller.Start(context.Background(), func() bool {
		first.Add(1)
		return true
	})
	poller.Start(context.Background(), func() bool {
		second.Add(1)
		return true
	})
	require.Eventually(t, func() bool { return second.Load() > 2 }, time.Second, 5*time.Millisecond)
	poller.Stop()

	frozen := first.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, frozen, first.Load())
}
