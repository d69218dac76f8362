// Package split provides the split workspace view: pick a document,
// enter page ranges, and execute.
package split

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
	"github.com/bindery-labs/bindery-cli/internal/core/domain"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driving"
)

// focusArea identifies which part of the view receives keys.
type focusArea int

const (
	focusList focusArea = iota
	focusPath
	focusRanges
)

// View is the split workspace.
type View struct {
	styles  *styles.Styles
	keys    *keymap.KeyMap
	session driving.SessionService
	preview driving.PreviewService

	list        *filelist.FileList
	pathInput   textinput.Model
	rangesInput textinput.Model
	focus       focusArea

	status string
	err    error

	width  int
	height int
	ready  bool
}

// NewView creates the split view.
func NewView(s *styles.Styles, session driving.SessionService, preview driving.PreviewService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	pathInput := textinput.New()
	pathInput.Placeholder = "/path/to/document.pdf"
	pathInput.CharLimit = 512
	pathInput.Width = 50

	rangesInput := textinput.New()
	rangesInput.Placeholder = "1-3,7,10-12"
	rangesInput.CharLimit = 128
	rangesInput.Width = 30

	return &View{
		styles:      s,
		keys:        keymap.DefaultKeyMap(),
		session:     session,
		preview:     preview,
		list:        filelist.New(s),
		pathInput:   pathInput,
		rangesInput: rangesInput,
		width:       80,
		height:      24,
	}
}

// Init initialises the split view.
func (v *View) Init() tea.Cmd {
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

// Update handles messages for the split view.
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
			v.status = fmt.Sprintf("Created %d file(s)", len(msg.Files))
		}
		v.Refresh()
		return v, nil

	case tea.KeyMsg:
		switch v.focus {
		case focusPath:
			return v.updatePathInput(msg)
		case focusRanges:
			return v.updateRangesInput(msg)
		default:
			return v.updateList(msg)
		}
	}

	return v, nil
}

// updateList handles keys while the document list has focus.
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

	case keyStr == "r", keymap.Matches(keyStr, v.keys.Execute):
		if v.list.SelectedEntry() == nil {
			return v, nil
		}
		v.focus = focusRanges
		return v, v.rangesInput.Focus()

	default:
		var cmd tea.Cmd
		v.list, cmd = v.list.Update(msg)
		return v, cmd
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

// updateRangesInput handles keys while the ranges input has focus.
// Enter executes the split against the selected entry.
func (v *View) updateRangesInput(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return v, v.executeCmd()

	case "esc":
		v.rangesInput.Blur()
		v.focus = focusList
		return v, nil
	}

	var cmd tea.Cmd
	v.rangesInput, cmd = v.rangesInput.Update(msg)
	return v, cmd
}

// executeCmd runs the split on the session asynchronously.
func (v *View) executeCmd() tea.Cmd {
	entry := v.list.SelectedEntry()
	if entry == nil || v.session.Executing() {
		return nil
	}

	baseName := strings.TrimSuffix(entry.DisplayName, domain.PDFExtension)
	preview, err := v.preview.Split(v.rangesInput.Value(), baseName, entry.PageCount)
	if err != nil {
		v.err = err
		return nil
	}
	if !preview.Validation.OK {
		v.err = fmt.Errorf("%s (%s)", preview.Validation.Reason, preview.Validation.Interval)
		return nil
	}

	entryID := entry.ID
	spec := preview.Spec
	v.rangesInput.Blur()
	v.focus = focusList
	v.status = "Splitting..."
	v.err = nil

	return func() tea.Msg {
		result, err := v.session.ExecuteSplit(context.Background(), entryID, spec, baseName)
		if err != nil {
			return messages.ExecutionFinished{Err: err}
		}
		return messages.ExecutionFinished{Files: result.Files}
	}
}

// View renders the split workspace.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Split a PDF"))
	b.WriteString("\n\n")
	b.WriteString(v.list.View())
	b.WriteString("\n")

	switch v.focus {
	case focusPath:
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render("Add file: "))
		b.WriteString(v.pathInput.View())
		b.WriteString("\n")

	case focusRanges:
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render("Pages: "))
		b.WriteString(v.rangesInput.View())
		b.WriteString("\n")
		b.WriteString(v.rangesPreview())

	default:
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
	b.WriteString(v.styles.Help.Render("[a] add  [d] remove  [Enter] pages/run  [esc] back"))

	return b.String()
}

// rangesPreview renders the derived output names for the current
// ranges text, or the validation problem.
func (v *View) rangesPreview() string {
	entry := v.list.SelectedEntry()
	text := strings.TrimSpace(v.rangesInput.Value())
	if entry == nil || text == "" {
		return ""
	}

	baseName := strings.TrimSuffix(entry.DisplayName, domain.PDFExtension)
	preview, err := v.preview.Split(text, baseName, entry.PageCount)
	if err != nil {
		return v.styles.Warning.Render("  " + err.Error())
	}
	if !preview.Validation.OK {
		return v.styles.Warning.Render(fmt.Sprintf("  %s (%s)", preview.Validation.Reason, preview.Validation.Interval))
	}

	var b strings.Builder
	for _, name := range preview.Names {
		b.WriteString(v.styles.Muted.Render("  -> " + name))
		b.WriteString("\n")
	}
	if preview.Validation.Provisional {
		b.WriteString(v.styles.Warning.Render("  page count still resolving; checked again on run"))
		b.WriteString("\n")
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.list.SetDimensions(width, height-12)
}

// Err returns the last error shown.
func (v *View) Err() error {
	return v.err
}

// List exposes the document list (for testing).
func (v *View) List() *filelist.FileList {
	return v.list
}
