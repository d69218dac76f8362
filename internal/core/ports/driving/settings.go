package driving

import "github.com/bindery-labs/bindery-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetOutputDirectory updates the output directory.
	SetOutputDirectory(dir string) error

	// SetNameAffixes updates the default output name prefix/suffix.
	SetNameAffixes(prefix, suffix string) error

	// SetWorkerBinary updates the worker executable path.
	SetWorkerBinary(path string) error

	// SetWatch updates the watch-folder configuration.
	SetWatch(enabled bool, dir string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
