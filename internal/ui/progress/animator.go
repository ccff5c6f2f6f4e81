package progress

import (
	"context"
	"sync"
	"time"
)

// DefaultFrameInterval is how often the animator reports a new value.
const DefaultFrameInterval = 50 * time.Millisecond

// Config contains animation timing values.
type Config struct {
	FrameInterval time.Duration
}

// Animator drives a 0..1 progress value linearly over a duration. Its
// clock can be frozen and resumed, mirroring a paused countdown.
type Animator struct {
	mu       sync.Mutex
	config   Config
	update   func(float64)
	cancel   context.CancelFunc
	duration time.Duration
	elapsed  time.Duration
	startAt  time.Time
	paused   bool
	now      func() time.Time
}

// New creates an animator that reports values through update.
func New(config Config, update func(float64)) *Animator {
	if config.FrameInterval <= 0 {
		config.FrameInterval = DefaultFrameInterval
	}
	return &Animator{
		config: config,
		update: update,
		now:    time.Now,
	}
}

// Start animates from zero over duration, replacing any running animation.
func (animator *Animator) Start(ctx context.Context, duration time.Duration) {
	animator.mu.Lock()
	animator.stopLocked()
	animator.duration = duration
	animator.elapsed = 0
	animator.paused = false
	animator.startAt = animator.now()
	animator.runLocked(ctx)
	animator.mu.Unlock()

	animator.update(0)
}

// Pause freezes the animation clock at its current value.
func (animator *Animator) Pause() {
	animator.mu.Lock()
	if animator.paused || animator.cancel == nil {
		animator.mu.Unlock()
		return
	}
	animator.elapsed += animator.now().Sub(animator.startAt)
	animator.paused = true
	animator.stopLocked()
	value := animator.valueLocked()
	animator.mu.Unlock()

	animator.update(value)
}

// Resume continues a paused animation from the frozen value.
func (animator *Animator) Resume(ctx context.Context) {
	animator.mu.Lock()
	defer animator.mu.Unlock()
	if !animator.paused {
		return
	}
	animator.paused = false
	animator.startAt = animator.now()
	animator.runLocked(ctx)
}

// Sync moves the animation to value, a fraction of the duration, so the
// animation can follow an authoritative countdown. A paused animation
// stays paused at the new value.
func (animator *Animator) Sync(value float64) {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}

	animator.mu.Lock()
	animator.elapsed = time.Duration(value * float64(animator.duration))
	animator.startAt = animator.now()
	current := animator.valueLocked()
	animator.mu.Unlock()

	animator.update(current)
}

// Stop cancels the animation and resets the value to zero.
func (animator *Animator) Stop() {
	animator.mu.Lock()
	animator.stopLocked()
	animator.paused = false
	animator.elapsed = 0
	animator.duration = 0
	animator.mu.Unlock()

	animator.update(0)
}

// Value returns the current progress in [0, 1].
func (animator *Animator) Value() float64 {
	animator.mu.Lock()
	defer animator.mu.Unlock()
	return animator.valueLocked()
}

// Paused reports whether the animation clock is frozen.
func (animator *Animator) Paused() bool {
	animator.mu.Lock()
	defer animator.mu.Unlock()
	return animator.paused
}

func (animator *Animator) runLocked(parent context.Context) {
	runCtx, cancel := context.WithCancel(parent)
	animator.cancel = cancel
	go animator.run(runCtx)
}

func (animator *Animator) stopLocked() {
	if animator.cancel != nil {
		animator.cancel()
		animator.cancel = nil
	}
}

func (animator *Animator) run(ctx context.Context) {
	ticker := time.NewTicker(animator.config.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			animator.mu.Lock()
			if ctx.Err() != nil {
				animator.mu.Unlock()
				return
			}
			value := animator.valueLocked()
			animator.mu.Unlock()

			animator.update(value)
			if value >= 1 {
				return
			}
		}
	}
}

func (animator *Animator) valueLocked() float64 {
	if animator.duration <= 0 {
		return 0
	}
	elapsed := animator.elapsed
	if !animator.paused && animator.cancel != nil {
		elapsed += animator.now().Sub(animator.startAt)
	}
	value := float64(elapsed) / float64(animator.duration)
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
