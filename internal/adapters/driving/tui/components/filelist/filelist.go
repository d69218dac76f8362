// Package filelist provides the reorderable collection list component
// for the TUI. The list renders a snapshot of the collection; move
// gestures only ever produce a proposed ID order for the session to
// validate, never a direct mutation.
package filelist

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/bindery-labs/bindery-cli/internal/adapters/driving/tui/styles"
	"github.com/bindery-labs/bindery-cli/internal/core/domain"
)

// FileList displays the document collection in a navigable list.
type FileList struct {
	entries  []domain.DocumentEntry
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// New creates a new file list component.
func New(s *styles.Styles) *FileList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &FileList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the file list.
func (f *FileList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (f *FileList) Update(msg tea.Msg) (*FileList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			f.MoveUp()
		case "down", "j":
			f.MoveDown()
		}
	}
	return f, nil
}

// View renders the file list.
func (f *FileList) View() string {
	if len(f.entries) == 0 {
		return f.styles.Muted.Render("No files yet. Press 'a' to add one.")
	}

	lines := make([]string, 0, len(f.entries))
	for i := range f.entries {
		lines = append(lines, f.renderEntry(i, &f.entries[i]))
	}
	return strings.Join(lines, "\n")
}

// renderEntry formats one collection entry.
func (f *FileList) renderEntry(index int, entry *domain.DocumentEntry) string {
	indicator := "  "
	if index == f.selected {
		indicator = "> "
	}

	name := entry.DisplayName
	maxNameLen := f.width - 30
	if maxNameLen < 12 {
		maxNameLen = 12
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	detail := f.entryDetail(entry)
	line := fmt.Sprintf("%s%d. %-*s  %s", indicator, index+1, maxNameLen, name, detail)

	switch {
	case index == f.selected:
		return f.styles.Selected.Render(line)
	case entry.Status == domain.StatusError:
		return f.styles.Error.Render(line)
	default:
		return f.styles.Normal.Render(line)
	}
}

// entryDetail describes an entry's resolution state.
func (f *FileList) entryDetail(entry *domain.DocumentEntry) string {
	size := humanize.Bytes(uint64(entry.ByteSize))
	switch entry.Status {
	case domain.StatusReady:
		return fmt.Sprintf("%d pages, %s", entry.PageCount, size)
	case domain.StatusProcessing:
		return "processing..."
	case domain.StatusError:
		return "error: " + entry.ErrorDetail
	default:
		return "resolving pages... " + size
	}
}

// SetEntries replaces the snapshot, keeping the cursor in range.
func (f *FileList) SetEntries(entries []domain.DocumentEntry) {
	f.entries = entries
	if f.selected >= len(entries) {
		f.selected = len(entries) - 1
	}
	if f.selected < 0 {
		f.selected = 0
	}
}

// Entries returns the current snapshot.
func (f *FileList) Entries() []domain.DocumentEntry {
	return f.entries
}

// Selected returns the cursor index.
func (f *FileList) Selected() int {
	return f.selected
}

// SelectedEntry returns the entry under the cursor, or nil.
func (f *FileList) SelectedEntry() *domain.DocumentEntry {
	if len(f.entries) == 0 || f.selected < 0 || f.selected >= len(f.entries) {
		return nil
	}
	return &f.entries[f.selected]
}

// MoveUp moves the cursor up.
func (f *FileList) MoveUp() {
	if f.selected > 0 {
		f.selected--
	}
}

// MoveDown moves the cursor down.
func (f *FileList) MoveDown() {
	if f.selected < len(f.entries)-1 {
		f.selected++
	}
}

// ProposeSwapUp returns the ID order that would result from moving
// the selected entry one position up, or nil when it is already
// first. The snapshot is not modified; the session decides whether
// the proposal applies.
func (f *FileList) ProposeSwapUp() []string {
	return f.proposeSwap(f.selected - 1)
}

// ProposeSwapDown is ProposeSwapUp's counterpart for moving down.
func (f *FileList) ProposeSwapDown() []string {
	return f.proposeSwap(f.selected + 1)
}

func (f *FileList) proposeSwap(target int) []string {
	if target < 0 || target >= len(f.entries) || len(f.entries) < 2 {
		return nil
	}
	ids := make([]string, len(f.entries))
	for i := range f.entries {
		ids[i] = f.entries[i].ID
	}
	ids[f.selected], ids[target] = ids[target], ids[f.selected]
	return ids
}

// SetDimensions sets the component dimensions.
func (f *FileList) SetDimensions(width, height int) {
	f.width = width
	f.height = height
}

// Count returns the number of entries.
func (f *FileList) Count() int {
	return len(f.entries)
}

// IsEmpty returns whether the list is empty.
func (f *FileList) IsEmpty() bool {
	return len(f.entries) == 0
}
