// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm
// architecture.
package messages

import (
	"github.com/bindery-labs/bindery-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewMerge is the merge workspace: collection list and output naming.
	ViewMerge
	// ViewSplit is the split workspace: entry pick and range entry.
	ViewSplit
	// ViewSettings is the settings configuration view.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewMerge:
		return "merge"
	case ViewSplit:
		return "split"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// Quit signals the application should exit.
type Quit struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// CollectionRefreshed is the periodic poll tick. Views re-read the
// session's entries when they receive it, which is how asynchronous
// page-count resolutions reach the screen.
type CollectionRefreshed struct{}

// ExecutionFinished carries the outcome of a merge or split run.
type ExecutionFinished struct {
	Output string
	Files  []string
	Err    error
}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Err error
}
