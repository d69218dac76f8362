// Package tui provides the interactive terminal user interface for
// bindery. It implements a driving adapter over the core services.
package tui

import (
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Session owns the document collection.
	Session driving.SessionService

	// Preview derives output names and size estimates.
	Preview driving.PreviewService

	// Settings manages application settings.
	Settings driving.SettingsService

	// History lists recorded jobs. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Session == nil {
		return ErrMissingSessionService
	}
	if p.Preview == nil {
		return ErrMissingPreviewService
	}
	if p.Settings == nil {
		return ErrMissingSettingsService
	}
	return nil
}
