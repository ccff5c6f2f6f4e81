package progress

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (clock *manualClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

func (clock *manualClock) Advance(delta time.Duration) {
	clock.mu.Lock()
	clock.now = clock.now.Add(delta)
	clock.mu.Unlock()
}

type recorder struct {
	mu     sync.Mutex
	values []float64
}

func (rec *recorder) record(value float64) {
	rec.mu.Lock()
	rec.values = append(rec.values, value)
	rec.mu.Unlock()
}

func (rec *recorder) last() float64 {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.values) == 0 {
		return -1
	}
	return rec.values[len(rec.values)-1]
}

func newTestAnimator() (*Animator, *manualClock, *recorder) {
	clock := &manualClock{now: time.Date(2021, 7, 9, 9, 0, 0, 0, time.UTC)}
	rec := &recorder{}
	animator := New(Config{FrameInterval: 2 * time.Millisecond}, rec.record)
	animator.now = clock.Now
	return animator, clock, rec
}

func TestAnimatorAdvancesWithClock(t *testing.T) {
	animator, clock, rec := newTestAnimator()
	defer animator.Stop()

	animator.Start(context.Background(), 100*time.Second)
	assert.Equal(t, 0.0, rec.last())

	clock.Advance(25 * time.Second)
	assert.InDelta(t, 0.25, animator.Value(), 1e-9)
	require.Eventually(t, func() bool { return rec.last() == 0.25 }, time.Second, 2*time.Millisecond)
}

func TestAnimatorPauseFreezesValue(t *testing.T) {
	animator, clock, _ := newTestAnimator()
	defer animator.Stop()

	animator.Start(context.Background(), 100*time.Second)
	clock.Advance(40 * time.Second)
	animator.Pause()
	require.True(t, animator.Paused())
	assert.InDelta(t, 0.4, animator.Value(), 1e-9)

	clock.Advance(time.Hour)
	assert.InDelta(t, 0.4, animator.Value(), 1e-9)

	animator.Resume(context.Background())
	assert.False(t, animator.Paused())
	assert.InDelta(t, 0.4, animator.Value(), 1e-9)
	clock.Advance(10 * time.Second)
	assert.InDelta(t, 0.5, animator.Value(), 1e-9)
}

func TestAnimatorCompletesAndClamps(t *testing.T) {
	animator, clock, rec := newTestAnimator()

	animator.Start(context.Background(), 10*time.Second)
	clock.Advance(time.Minute)

	require.Eventually(t, func() bool { return rec.last() == 1 }, time.Second, 2*time.Millisecond)
	assert.Equal(t, 1.0, animator.Value())
}

func TestAnimatorStopResets(t *testing.T) {
	animator, clock, _ := newTestAnimator()

	animator.Start(context.Background(), 10*time.Second)
	clock.Advance(5 * time.Second)
	animator.Stop()

	assert.Equal(t, 0.0, animator.Value())
	assert.False(t, animator.Paused())
}

func TestAnimatorSyncRealignsClock(t *testing.T) {
	animator, clock, _ := newTestAnimator()
	defer animator.Stop()

	animator.Start(context.Background(), 100*time.Second)
	clock.Advance(10 * time.Second)
	animator.Sync(0.3)
	assert.InDelta(t, 0.3, animator.Value(), 1e-9)

	clock.Advance(10 * time.Second)
	assert.InDelta(t, 0.4, animator.Value(), 1e-9)

	animator.Pause()
	animator.Sync(0.35)
	clock.Advance(time.Hour)
	assert.True(t, animator.Paused())
	assert.InDelta(t, 0.35, animator.Value(), 1e-9)

	animator.Sync(2)
	assert.Equal(t, 1.0, animator.Value())
}
