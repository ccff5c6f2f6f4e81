package preferences

import (
	"time"

	"pomodorotimer/internal/core/model"
	"pomodorotimer/internal/scheduler"
)

// Settings defines editable user preferences.
type Settings struct {
	WorkDuration time.Duration
	RestDuration time.Duration
	TickInterval time.Duration
}

// DefaultSettings returns default settings for the timer.
func DefaultSettings() Settings {
	return Settings{
		WorkDuration: model.DefaultWorkDuration,
		RestDuration: model.DefaultRestDuration,
		TickInterval: scheduler.DefaultInterval,
	}
}

// PomodoroConfig converts settings to the engine configuration.
func (settings Settings) PomodoroConfig() model.PomodoroConfig {
	return model.PomodoroConfig{
		WorkDuration: settings.WorkDuration,
		RestDuration: settings.RestDuration,
	}
}

// MergeEdits applies the fields that differ between shown and edited onto
// stored. Use it to persist user edits without writing values that came
// from somewhere other than the settings file, such as the environment.
func MergeEdits(stored, shown, edited Settings) Settings {
	merged := stored
	if edited.WorkDuration != shown.WorkDuration {
		merged.WorkDuration = edited.WorkDuration
	}
	if edited.RestDuration != shown.RestDuration {
		merged.RestDuration = edited.RestDuration
	}
	if edited.TickInterval != shown.TickInterval {
		merged.TickInterval = edited.TickInterval
	}
	return merged
}
