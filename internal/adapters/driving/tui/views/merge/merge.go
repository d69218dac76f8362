// Package merge provides the merge workspace view: the ordered
// collection, output naming, and execution.
package merge

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bindery-labs/bindery-cli/internal/adapters/driving/tui/components/filelist"
	"github.com/bindery-labs/bindery-cli/internal/adapters/driving/tui/keymap"
	"github.com/bindery-labs/bindery-cli/internal/adapters/driving/tui/messages"
	"github.com/bindery-labs/bindery-cli/internal/adapters/driving/tui/styles"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driving"
)

// focusArea identifies which part of the view receives keys.
type focusArea int

const (
	focusList focusArea = iota
	focusPath
	focusName
)

// View is the merge workspace.
type View struct {
	styles   *styles.Styles
	keys     *keymap.KeyMap
	session  driving.SessionService
	preview  driving.PreviewService
	settings driving.SettingsService

	list      *filelist.FileList
	pathInput textinput.Model
	nameInput textinput.Model
	focus     focusArea

	prefix string
	suffix string
	status string
	err    error

	width  int
	height int
	ready  bool
}

// NewView creates the merge view.
func NewView(s *styles.Styles, session driving.SessionService, preview driving.PreviewService, settings driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	pathInput := textinput.New()
	pathInput.Placeholder = "/path/to/document.pdf"
	pathInput.CharLimit = 512
	pathInput.Width = 50

	nameInput := textinput.New()
	nameInput.SetValue("merged")
	nameInput.CharLimit = 128
	nameInput.Width = 40

	return &View{
		styles:    s,
		keys:      keymap.DefaultKeyMap(),
		session:   session,
		preview:   preview,
		settings:  settings,
		list:      filelist.New(s),
		pathInput: pathInput,
		nameInput: nameInput,
		width:     80,
		height:    24,
	}
}

// Init initialises the merge view.
func (v *View) Init() tea.Cmd {
	if v.settings != nil {
		if settings, err := v.settings.Get(); err == nil {
			v.prefix = settings.Output.NamePrefix
			v.suffix = settings.Output.NameSuffix
		}
	}
	v.Refresh()
	return nil
}

// Refresh reloads the collection snapshot from the session.
func (v *View) Refresh() {
	v.list.SetEntries(v.session.Entries())
}

// Reset clears transient state when re-entering the view.
func (v *View) Reset() {
	v.focus = focusList
	v.status = ""
	v.err = nil
	v.pathInput.Reset()
}

// Update handles messages for the merge view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.CollectionRefreshed:
		v.Refresh()
		return v, nil

	case messages.ExecutionFinished:
		v.err = msg.Err
		if msg.Err == nil {
			v.status = "Created " + msg.Output
		}
		v.Refresh()
		return v, nil

	case tea.KeyMsg:
		switch v.focus {
		case focusPath:
			return v.updatePathInput(msg)
		case focusName:
			return v.updateNameInput(msg)
		default:
			return v.updateList(msg)
		}
	}

	return v, nil
}

// updateList handles keys while the collection list has focus.
func (v *View) updateList(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keys.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case keymap.Matches(keyStr, v.keys.Add):
		v.focus = focusPath
		v.status = ""
		v.err = nil
		return v, v.pathInput.Focus()

	case keymap.Matches(keyStr, v.keys.Remove):
		if entry := v.list.SelectedEntry(); entry != nil {
			v.session.Remove(entry.ID)
			v.Refresh()
		}
		return v, nil

	case keymap.Matches(keyStr, v.keys.Clear):
		v.session.Clear()
		v.Refresh()
		return v, nil

	case keymap.Matches(keyStr, v.keys.Name):
		v.focus = focusName
		return v, v.nameInput.Focus()

	case keymap.Matches(keyStr, v.keys.MoveUp):
		v.applyReorder(v.list.ProposeSwapUp(), -1)
		return v, nil

	case keymap.Matches(keyStr, v.keys.MoveDown):
		v.applyReorder(v.list.ProposeSwapDown(), 1)
		return v, nil

	case keymap.Matches(keyStr, v.keys.Execute):
		return v, v.executeCmd()

	default:
		var cmd tea.Cmd
		v.list, cmd = v.list.Update(msg)
		return v, cmd
	}
}

// applyReorder submits a proposed order. The session's answer is
// authoritative either way: a stale proposal just re-syncs the list.
func (v *View) applyReorder(proposed []string, cursorDelta int) {
	if proposed == nil {
		return
	}
	entries, applied := v.session.Reorder(proposed)
	v.list.SetEntries(entries)
	if applied {
		if cursorDelta < 0 {
			v.list.MoveUp()
		} else {
			v.list.MoveDown()
		}
	}
}

// updatePathInput handles keys while the add-file input has focus.
func (v *View) updatePathInput(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "enter":
		path := strings.TrimSpace(v.pathInput.Value())
		v.pathInput.Reset()
		v.pathInput.Blur()
		v.focus = focusList
		if path == "" {
			return v, nil
		}
		if _, err := v.session.AddPath(context.Background(), path); err != nil {
			v.err = err
		} else {
			v.err = nil
		}
		v.Refresh()
		return v, nil

	case "esc":
		v.pathInput.Reset()
		v.pathInput.Blur()
		v.focus = focusList
		return v, nil
	}

	var cmd tea.Cmd
	v.pathInput, cmd = v.pathInput.Update(msg)
	return v, cmd
}

// updateNameInput handles keys while the output-name input has focus.
func (v *View) updateNameInput(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		v.nameInput.Blur()
		v.focus = focusList
		return v, nil
	}

	var cmd tea.Cmd
	v.nameInput, cmd = v.nameInput.Update(msg)
	return v, cmd
}

// executeCmd runs the merge on the session asynchronously.
func (v *View) executeCmd() tea.Cmd {
	if v.session.Executing() || v.list.IsEmpty() {
		return nil
	}
	naming := v.naming()
	v.status = "Merging..."
	v.err = nil

	return func() tea.Msg {
		result, err := v.session.ExecuteMerge(context.Background(), naming)
		if err != nil {
			return messages.ExecutionFinished{Err: err}
		}
		return messages.ExecutionFinished{Output: result.Output}
	}
}

// naming builds the output naming from the input and the configured
// affixes.
func (v *View) naming() driving.MergeNaming {
	return driving.MergeNaming{
		Prefix:   v.prefix,
		BaseName: v.nameInput.Value(),
		Suffix:   v.suffix,
	}
}

// View renders the merge workspace.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Merge PDFs"))
	b.WriteString("\n\n")
	b.WriteString(v.list.View())
	b.WriteString("\n\n")

	preview := v.preview.Merge(v.naming())
	summary := fmt.Sprintf("%d file(s), %s", preview.FileCount, preview.EstimatedSizeHuman)
	if preview.EstimatedPages > 0 {
		if preview.PagesLowerBound {
			summary += fmt.Sprintf(", at least %d pages", preview.EstimatedPages)
		} else {
			summary += fmt.Sprintf(", %d pages", preview.EstimatedPages)
		}
	}
	b.WriteString(v.styles.Subtitle.Render("Output: "))
	b.WriteString(v.styles.Normal.Render(preview.FinalName))
	b.WriteString(v.styles.Muted.Render("  (" + summary + ")"))
	b.WriteString("\n")

	switch v.focus {
	case focusPath:
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render("Add file: "))
		b.WriteString(v.pathInput.View())
		b.WriteString("\n")
	case focusName:
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render("Output name: "))
		b.WriteString(v.nameInput.View())
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
	b.WriteString(v.styles.Help.Render("[a] add  [d] remove  [J/K] move  [n] name  [Enter] merge  [esc] back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.list.SetDimensions(width, height-10)
}

// Err returns the last error shown.
func (v *View) Err() error {
	return v.err
}

// List exposes the collection list (for testing).
func (v *View) List() *filelist.FileList {
	return v.list
}
