package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"pomodorotimer/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	WorkDurationSeconds int `yaml:"work_duration_seconds"`
	RestDurationSeconds int `yaml:"rest_duration_seconds"`
	TickIntervalMillis  int `yaml:"tick_interval_millis,omitempty"`
}

// LoadedSettings holds settings as stored on disk and with environment
// overrides applied on top. Only File should ever be written back.
type LoadedSettings struct {
	File      preferences.Settings
	Effective preferences.Settings
}

// LoadSettings reads user preferences for appName and applies
// environment overrides. If the config file does not exist, default
// settings are used.
func LoadSettings(appName string) (LoadedSettings, error) {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		defaults := preferences.DefaultSettings()
		return LoadedSettings{File: defaults, Effective: defaults}, err
	}
	return loadLayers(configPath)
}

func loadLayers(configPath string) (LoadedSettings, error) {
	fileSettings, err := LoadSettingsFile(configPath)
	loaded := LoadedSettings{File: fileSettings, Effective: fileSettings}
	if err != nil {
		return loaded, err
	}
	if err := ApplyEnvOverrides(&loaded.Effective); err != nil {
		return loaded, err
	}
	return loaded, nil
}

// LoadSettingsFile reads user preferences from a YAML file.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences for appName.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// SaveSettingsFile writes user preferences to a YAML file.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		WorkDurationSeconds: int(settings.WorkDuration / time.Second),
		RestDurationSeconds: int(settings.RestDuration / time.Second),
		TickIntervalMillis:  int(settings.TickInterval / time.Millisecond),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// ResolveConfigPath returns the settings file location for appName.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.WorkDurationSeconds > 0 {
		settings.WorkDuration = time.Duration(fileData.WorkDurationSeconds) * time.Second
	}
	if fileData.RestDurationSeconds > 0 {
		settings.RestDuration = time.Duration(fileData.RestDurationSeconds) * time.Second
	}
	if fileData.TickIntervalMillis > 0 {
		settings.TickInterval = time.Duration(fileData.TickIntervalMillis) * time.Millisecond
	}
}
