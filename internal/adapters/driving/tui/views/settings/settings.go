// Package settings provides the settings configuration view for the
// TUI.
package settings

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bindery-labs/bindery-cli/internal/adapters/driving/tui/messages"
	"github.com/bindery-labs/bindery-cli/internal/adapters/driving/tui/styles"
	"github.com/bindery-labs/bindery-cli/internal/core/domain"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driving"
)

// field indexes into the editable settings list.
type field int

const (
	fieldOutputDir field = iota
	fieldNamePrefix
	fieldNameSuffix
	fieldWorkerBinary
	fieldWatchDir
	fieldWatchEnabled
	fieldCount
)

// labels for the settings list, in field order.
var labels = [fieldCount]string{
	"Output directory",
	"Output name prefix",
	"Output name suffix",
	"Worker binary",
	"Watch directory",
	"Watch folder",
}

// View is the settings configuration view.
type View struct {
	styles   *styles.Styles
	settings driving.SettingsService

	current  *domain.AppSettings
	selected field
	editing  bool
	input    textinput.Model

	status string
	err    error

	width  int
	height int
	ready  bool
}

// NewView creates the settings view.
func NewView(s *styles.Styles, settings driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	input := textinput.New()
	input.CharLimit = 512
	input.Width = 50

	return &View{
		styles:   s,
		settings: settings,
		input:    input,
		width:    80,
		height:   24,
	}
}

// Init loads the current settings.
func (v *View) Init() tea.Cmd {
	settings, err := v.settings.Get()
	if err != nil {
		v.err = err
		return nil
	}
	v.current = settings
	return nil
}

// Reset clears transient state when re-entering the view.
func (v *View) Reset() {
	v.editing = false
	v.status = ""
	v.err = nil
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		if v.editing {
			return v.updateEditing(msg)
		}
		return v.updateBrowsing(msg)
	}

	return v, nil
}

// updateBrowsing handles keys while navigating the field list.
func (v *View) updateBrowsing(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
		return v, nil

	case "down", "j":
		if v.selected < fieldCount-1 {
			v.selected++
		}
		return v, nil

	case "enter":
		if v.current == nil {
			return v, nil
		}
		if v.selected == fieldWatchEnabled {
			return v, v.toggleWatch()
		}
		v.editing = true
		v.status = ""
		v.err = nil
		v.input.SetValue(v.fieldValue(v.selected))
		return v, v.input.Focus()
	}

	return v, nil
}

// updateEditing handles keys while a field is being edited.
func (v *View) updateEditing(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "enter":
		v.editing = false
		v.input.Blur()
		v.apply(v.selected, strings.TrimSpace(v.input.Value()))
		return v, nil

	case "esc":
		v.editing = false
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// toggleWatch flips the watch-folder switch.
func (v *View) toggleWatch() tea.Cmd {
	enabled := !v.current.Watch.Enabled
	if err := v.settings.SetWatch(enabled, v.current.Watch.Directory); err != nil {
		v.err = err
		return nil
	}
	v.reload()
	return nil
}

// apply writes one edited field through the settings service.
func (v *View) apply(f field, value string) {
	var err error
	switch f {
	case fieldOutputDir:
		err = v.settings.SetOutputDirectory(value)
	case fieldNamePrefix:
		err = v.settings.SetNameAffixes(value, v.current.Output.NameSuffix)
	case fieldNameSuffix:
		err = v.settings.SetNameAffixes(v.current.Output.NamePrefix, value)
	case fieldWorkerBinary:
		err = v.settings.SetWorkerBinary(value)
	case fieldWatchDir:
		err = v.settings.SetWatch(v.current.Watch.Enabled, value)
	case fieldWatchEnabled, fieldCount:
		return
	}
	if err != nil {
		v.err = err
		return
	}
	v.err = nil
	v.status = "Saved"
	v.reload()
}

// reload re-reads settings after a write.
func (v *View) reload() {
	if settings, err := v.settings.Get(); err == nil {
		v.current = settings
	}
}

// fieldValue returns the current value of a field for editing.
func (v *View) fieldValue(f field) string {
	switch f {
	case fieldOutputDir:
		return v.current.Output.Directory
	case fieldNamePrefix:
		return v.current.Output.NamePrefix
	case fieldNameSuffix:
		return v.current.Output.NameSuffix
	case fieldWorkerBinary:
		return v.current.Worker.Binary
	case fieldWatchDir:
		return v.current.Watch.Directory
	default:
		return ""
	}
}

// displayValue renders the value shown in the field list.
func (v *View) displayValue(f field) string {
	if f == fieldWatchEnabled {
		if v.current.Watch.Enabled {
			return "enabled"
		}
		return "disabled"
	}
	if value := v.fieldValue(f); value != "" {
		return value
	}
	return "(none)"
}

// View renders the settings list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.current == nil {
		b.WriteString(v.styles.Muted.Render("Loading..."))
		return b.String()
	}

	for f := field(0); f < fieldCount; f++ {
		cursor := "  "
		style := v.styles.Normal
		if f == v.selected {
			cursor = "> "
			style = v.styles.Subtitle
		}
		b.WriteString(cursor + style.Render(labels[f]+": "))

		if v.editing && f == v.selected {
			b.WriteString(v.input.View())
		} else {
			b.WriteString(v.styles.Muted.Render(v.displayValue(f)))
		}
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(v.err.Error()))
		b.WriteString("\n")
	} else if v.status != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Success.Render(v.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Edit/Toggle  [esc] Back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the selected field index (for testing).
func (v *View) Selected() int {
	return int(v.selected)
}

// Err returns the last error shown.
func (v *View) Err() error {
	return v.err
}
