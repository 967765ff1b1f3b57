package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aleksaa01/qsleepy/internal/core/schedule"
	"github.com/aleksaa01/qsleepy/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	DefaultAction      string `yaml:"default_action"`
	DefaultSeconds     int    `yaml:"default_seconds"`
	DefaultMinutes     int    `yaml:"default_minutes"`
	DefaultHours       int    `yaml:"default_hours"`
	ChimeEnabled       *bool  `yaml:"chime_enabled,omitempty"`
	WarningLeadSeconds int    `yaml:"warning_lead_seconds"`
	DryRun             bool   `yaml:"dry_run"`
}

// Store reads and writes settings.yaml inside dir.
type Store struct {
	path string
}

// NewStore returns a Store for <configDir>/<appName>/settings.yaml.
func NewStore(configDir, appName string) *Store {
	return &Store{path: filepath.Join(configDir, appName, settingsFileName)}
}

// Path returns the settings file path.
func (store *Store) Path() string {
	return store.path
}

// Dir returns the directory holding the settings file.
func (store *Store) Dir() string {
	return filepath.Dir(store.path)
}

// Load reads user preferences from YAML.
// If the file does not exist, default settings are returned.
func (store *Store) Load() (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(store.path)
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

// Save writes user preferences to YAML.
func (store *Store) Save(settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	chime := settings.ChimeEnabled
	fileData := yamlSettings{
		DefaultAction:      string(settings.DefaultKind),
		DefaultSeconds:     settings.DefaultSeconds,
		DefaultMinutes:     settings.DefaultMinutes,
		DefaultHours:       settings.DefaultHours,
		ChimeEnabled:       &chime,
		WarningLeadSeconds: int(settings.WarningLead / time.Second),
		DryRun:             settings.DryRun,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(store.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if kind, err := schedule.ParseKind(fileData.DefaultAction); err == nil {
		settings.DefaultKind = kind
	}
	if fileData.DefaultSeconds >= 0 {
		settings.DefaultSeconds = fileData.DefaultSeconds
	}
	if fileData.DefaultMinutes >= 0 {
		settings.DefaultMinutes = fileData.DefaultMinutes
	}
	if fileData.DefaultHours >= 0 {
		settings.DefaultHours = fileData.DefaultHours
	}
	if fileData.ChimeEnabled != nil {
		settings.ChimeEnabled = *fileData.ChimeEnabled
	}
	if fileData.WarningLeadSeconds > 0 && fileData.WarningLeadSeconds <= 3600 {
		settings.WarningLead = time.Duration(fileData.WarningLeadSeconds) * time.Second
	}

	settings.DryRun = fileData.DryRun
}
