package tray

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pomodorotimer/internal/core/pomodoro"
)

func TestManagerTracksLabelsWithoutTray(t *testing.T) {
	primary := 0
	manager := New(nil, Callbacks{OnPrimary: func() { primary++ }})

	assert.Equal(t, "Status: idle", manager.Status())
	assert.Equal(t, "Work", manager.Action())
	assert.True(t, manager.stopItem.Disabled)

	manager.SetStatus("work 24:59")
	manager.SetAction("Pause", true)

	assert.Equal(t, "Status: work 24:59", manager.Status())
	assert.Equal(t, "Pause", manager.Action())
	assert.False(t, manager.stopItem.Disabled)

	manager.primaryItem.Action()
	assert.Equal(t, 1, primary)
}

func TestStatusLineIgnoresCountdown(t *testing.T) {
	manager := New(nil, Callbacks{})

	manager.SetStatus(StatusLine(pomodoro.PhaseWork, pomodoro.StateRunning))
	first := manager.Status()
	builds := manager.builds
	for i := 0; i < 10; i++ {
		manager.SetStatus(StatusLine(pomodoro.PhaseWork, pomodoro.StateRunning))
		manager.SetAction("Pause", true)
	}

	assert.Equal(t, "Status: work (running)", first)
	assert.Equal(t, first, manager.Status())
	assert.Equal(t, builds+1, manager.builds)

	manager.SetStatus(StatusLine(pomodoro.PhaseRest, pomodoro.StateIdle))
	assert.Equal(t, "Status: rest (idle)", manager.Status())
}
