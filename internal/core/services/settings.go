package services

import (
	"fmt"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driven"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driving"
)

// Ensure Settings implements the interface.
var _ driving.SettingsService = (*Settings)(nil)

// Configuration keys.
const (
	keyOutputDirectory = "output.directory"
	keyNamePrefix      = "output.name_prefix"
	keyNameSuffix      = "output.name_suffix"
	keyWorkerBinary    = "worker.binary"
	keyWorkerTimeout   = "worker.timeout_seconds"
	keyWatchEnabled    = "watch.enabled"
	keyWatchDirectory  = "watch.directory"
)

// Settings manages application settings over a ConfigStore.
type Settings struct {
	store driven.ConfigStore
}

// NewSettings creates a settings service.
func NewSettings(store driven.ConfigStore) *Settings {
	return &Settings{store: store}
}

// Get retrieves current settings, falling back to defaults for any
// key the store does not hold.
func (s *Settings) Get() (*domain.AppSettings, error) {
	settings := domain.DefaultAppSettings()
	if s.store == nil {
		return settings, nil
	}

	if v := s.store.GetString(keyOutputDirectory); v != "" {
		settings.Output.Directory = v
	}
	if v, ok := s.store.Get(keyNamePrefix); ok {
		if str, isStr := v.(string); isStr {
			settings.Output.NamePrefix = str
		}
	}
	if v, ok := s.store.Get(keyNameSuffix); ok {
		if str, isStr := v.(string); isStr {
			settings.Output.NameSuffix = str
		}
	}
	if v := s.store.GetString(keyWorkerBinary); v != "" {
		settings.Worker.Binary = v
	}
	if v := s.store.GetInt(keyWorkerTimeout); v > 0 {
		settings.Worker.TimeoutSeconds = v
	}
	if _, ok := s.store.Get(keyWatchEnabled); ok {
		settings.Watch.Enabled = s.store.GetBool(keyWatchEnabled)
	}
	if v := s.store.GetString(keyWatchDirectory); v != "" {
		settings.Watch.Directory = v
	}

	return settings, nil
}

// Save persists all settings to the store.
func (s *Settings) Save(settings *domain.AppSettings) error {
	if s.store == nil {
		return domain.ErrNotFound
	}

	pairs := []struct {
		key   string
		value any
	}{
		{keyOutputDirectory, settings.Output.Directory},
		{keyNamePrefix, settings.Output.NamePrefix},
		{keyNameSuffix, settings.Output.NameSuffix},
		{keyWorkerBinary, settings.Worker.Binary},
		{keyWorkerTimeout, settings.Worker.TimeoutSeconds},
		{keyWatchEnabled, settings.Watch.Enabled},
		{keyWatchDirectory, settings.Watch.Directory},
	}
	for _, p := range pairs {
		if err := s.store.Set(p.key, p.value); err != nil {
			return fmt.Errorf("saving %s: %w", p.key, err)
		}
	}
	return s.store.Save()
}

// SetOutputDirectory updates the output directory.
func (s *Settings) SetOutputDirectory(dir string) error {
	if dir == "" {
		return fmt.Errorf("%w: output directory cannot be empty", domain.ErrInvalidInput)
	}
	return s.setAndSave(keyOutputDirectory, dir)
}

// SetNameAffixes updates the default output name prefix/suffix.
func (s *Settings) SetNameAffixes(prefix, suffix string) error {
	if err := s.store.Set(keyNamePrefix, prefix); err != nil {
		return err
	}
	if err := s.store.Set(keyNameSuffix, suffix); err != nil {
		return err
	}
	return s.store.Save()
}

// SetWorkerBinary updates the worker executable path.
func (s *Settings) SetWorkerBinary(path string) error {
	if path == "" {
		return fmt.Errorf("%w: worker binary cannot be empty", domain.ErrInvalidInput)
	}
	return s.setAndSave(keyWorkerBinary, path)
}

// SetWatch updates the watch-folder configuration.
func (s *Settings) SetWatch(enabled bool, dir string) error {
	if enabled && dir == "" {
		return fmt.Errorf("%w: watch directory required when watch is enabled", domain.ErrInvalidInput)
	}
	if err := s.store.Set(keyWatchEnabled, enabled); err != nil {
		return err
	}
	if err := s.store.Set(keyWatchDirectory, dir); err != nil {
		return err
	}
	return s.store.Save()
}

// GetDefaults returns default settings.
func (s *Settings) GetDefaults() domain.AppSettings {
	return *domain.DefaultAppSettings()
}

// setAndSave writes one key and persists.
func (s *Settings) setAndSave(key string, value any) error {
	if err := s.store.Set(key, value); err != nil {
		return err
	}
	return s.store.Save()
}
