package scheduler

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the polling cadence used when none is configured.
const DefaultInterval = 100 * time.Millisecond

// Options contains runtime options for Poller.
type Options struct {
	Interval time.Duration
	// Dispatch runs each tick. It lets a UI marshal ticks onto its own
	// thread; nil calls the tick directly from the poller goroutine.
	Dispatch func(func())
}

// Poller calls a tick function at a fixed cadence until the function
// reports that there is nothing left to poll.
type Poller struct {
	mu      sync.Mutex
	options Options
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates a stopped Poller.
func New(options Options) *Poller {
	if options.Interval <= 0 {
		options.Interval = DefaultInterval
	}
	if options.Dispatch == nil {
		options.Dispatch = func(fn func()) { fn() }
	}
	return &Poller{options: options}
}

// Interval returns the polling cadence.
func (poller *Poller) Interval() time.Duration {
	return poller.options.Interval
}

// Start launches the polling loop, replacing any loop already running.
// tick returns false to stop polling.
func (poller *Poller) Start(ctx context.Context, tick func() bool) {
	poller.mu.Lock()
	if poller.cancel != nil {
		poller.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	poller.cancel = cancel
	poller.done = done
	poller.mu.Unlock()

	go poller.run(runCtx, cancel, done, tick)
}

// Stop terminates the polling loop. It is safe to call when stopped.
func (poller *Poller) Stop() {
	poller.mu.Lock()
	defer poller.mu.Unlock()
	if poller.cancel != nil {
		poller.cancel()
		poller.cancel = nil
	}
}

// Running reports whether a polling loop is active.
func (poller *Poller) Running() bool {
	poller.mu.Lock()
	done := poller.done
	poller.mu.Unlock()
	if done == nil {
		return false
	}
	select {
	case <-done:
		return false
	default:
		return true
	}
}

func (poller *Poller) run(ctx context.Context, cancel context.CancelFunc, done chan struct{}, tick func() bool) {
	defer close(done)
	defer cancel()

	ticker := time.NewTicker(poller.options.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			poller.options.Dispatch(func() {
				if ctx.Err() != nil {
					return
				}
				if !tick() {
					cancel()
				}
			})
		}
	}
}
