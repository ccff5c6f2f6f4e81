package storage

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"pomodorotimer/internal/ui/preferences"
)

// durationSeconds parses "25m", "90s" or a bare number of seconds.
type durationSeconds time.Duration

// SetValue implements cleanenv.Setter.
func (d *durationSeconds) SetValue(data string) error {
	value, err := parseDuration(data)
	if err != nil {
		return err
	}
	*d = durationSeconds(value)
	return nil
}

func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("duration must be like 25m, 90s or a number of seconds: %w", err)
	}
	return d, nil
}

type envOverrides struct {
	WorkDuration durationSeconds `env:"POMODORO_WORK_DURATION"`
	RestDuration durationSeconds `env:"POMODORO_REST_DURATION"`
}

// ApplyEnvOverrides replaces durations set through the environment.
// Unset or non-positive values keep the current settings.
func ApplyEnvOverrides(settings *preferences.Settings) error {
	var overrides envOverrides
	if err := cleanenv.ReadEnv(&overrides); err != nil {
		return fmt.Errorf("read env: %w", err)
	}
	if value := time.Duration(overrides.WorkDuration); value > 0 {
		settings.WorkDuration = value
	}
	if value := time.Duration(overrides.RestDuration); value > 0 {
		settings.RestDuration = value
	}
	return nil
}
