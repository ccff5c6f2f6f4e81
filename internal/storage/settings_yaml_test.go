package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodorotimer/internal/ui/preferences"
)

func TestLoadSettingsFileMissingReturnsDefaults(t *testing.T) {
	settings, err := LoadSettingsFile(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSaveThenLoadSettingsFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", settingsFileName)
	want := preferences.Settings{
		WorkDuration: 50 * time.Minute,
		RestDuration: 10 * time.Minute,
		TickInterval: 250 * time.Millisecond,
	}

	require.NoError(t, SaveSettingsFile(configPath, want))
	got, err := LoadSettingsFile(configPath)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadSettingsFileIgnoresNonPositive(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), settingsFileName)
	data := "work_duration_seconds: 0\nrest_duration_seconds: -5\ntick_interval_millis: 0\n"
	require.NoError(t, os.WriteFile(configPath, []byte(data), 0o644))

	settings, err := LoadSettingsFile(configPath)

	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestLoadSettingsFileRejectsMalformedYaml(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("work_duration_seconds: [oops"), 0o644))

	settings, err := LoadSettingsFile(configPath)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse settings yaml")
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("POMODORO_WORK_DURATION", "45m")
	t.Setenv("POMODORO_REST_DURATION", "90")

	settings := preferences.DefaultSettings()
	require.NoError(t, ApplyEnvOverrides(&settings))

	assert.Equal(t, 45*time.Minute, settings.WorkDuration)
	assert.Equal(t, 90*time.Second, settings.RestDuration)
}

func TestApplyEnvOverridesRejectsGarbage(t *testing.T) {
	t.Setenv("POMODORO_WORK_DURATION", "soon")

	settings := preferences.DefaultSettings()
	err := ApplyEnvOverrides(&settings)

	require.Error(t, err)
	assert.Equal(t, preferences.DefaultSettings().WorkDuration, settings.WorkDuration)
}

func TestParseDuration(t *testing.T) {
	cases := map[string]time.Duration{
		"10":    10 * time.Second,
		" 25m ": 25 * time.Minute,
		"1m30s": 90 * time.Second,
		"":      0,
	}
	for input, want := range cases {
		got, err := parseDuration(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
}

func TestLoadLayersKeepsEnvOutOfFileValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), settingsFileName)
	stored := preferences.DefaultSettings()
	stored.RestDuration = 90 * time.Second
	require.NoError(t, SaveSettingsFile(configPath, stored))
	t.Setenv("POMODORO_WORK_DURATION", "45m")

	loaded, err := loadLayers(configPath)

	require.NoError(t, err)
	assert.Equal(t, stored, loaded.File)
	assert.Equal(t, 45*time.Minute, loaded.Effective.WorkDuration)
	assert.Equal(t, 90*time.Second, loaded.Effective.RestDuration)
}
