package model

import (
	"errors"
	"fmt"
	"time"
)

// Default phase durations.
const (
	DefaultWorkDuration = 1500 * time.Second
	DefaultRestDuration = 300 * time.Second
)

// ErrInvalidConfig reports a configuration the engine cannot run with.
var ErrInvalidConfig = errors.New("invalid pomodoro config")

// PomodoroConfig contains the durations of the two countdown phases.
type PomodoroConfig struct {
	WorkDuration time.Duration
	RestDuration time.Duration
}

// DefaultPomodoroConfig returns the classic 25/5 split.
func DefaultPomodoroConfig() PomodoroConfig {
	return PomodoroConfig{
		WorkDuration: DefaultWorkDuration,
		RestDuration: DefaultRestDuration,
	}
}

// Validate checks that both phases have a positive duration.
func (config PomodoroConfig) Validate() error {
	if config.WorkDuration <= 0 {
		return fmt.Errorf("%w: work duration %s", ErrInvalidConfig, config.WorkDuration)
	}
	if config.RestDuration <= 0 {
		return fmt.Errorf("%w: rest duration %s", ErrInvalidConfig, config.RestDuration)
	}
	return nil
}
