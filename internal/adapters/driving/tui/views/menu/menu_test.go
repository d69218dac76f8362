package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bindery-labs/bindery-cli/internal/adapters/driving/tui/messages"
	"github.com/bindery-labs/bindery-cli/internal/adapters/driving/tui/styles"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMenu_Navigation(t *testing.T) {
	v := NewView(styles.DefaultStyles())
	require.Equal(t, 0, v.Selected())

	v, _ = v.Update(keyMsg("j"))
	v, _ = v.Update(keyMsg("j"))
	assert.Equal(t, 2, v.Selected())

	v, _ = v.Update(keyMsg("k"))
	assert.Equal(t, 1, v.Selected())

	// Up from the top stays put
	v, _ = v.Update(keyMsg("k"))
	v, _ = v.Update(keyMsg("k"))
	assert.Equal(t, 0, v.Selected())
}

func TestMenu_EnterSelectsView(t *testing.T) {
	v := NewView(styles.DefaultStyles())
	v, _ = v.Update(keyMsg("j")) // Split a PDF

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewSplit, msg.View)
}

func TestMenu_QuitItem(t *testing.T) {
	v := NewView(styles.DefaultStyles())
	for i := 0; i < 4; i++ {
		v, _ = v.Update(keyMsg("j"))
	}

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMenu_QKeyQuits(t *testing.T) {
	v := NewView(styles.DefaultStyles())

	_, cmd := v.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMenu_View(t *testing.T) {
	v := NewView(styles.DefaultStyles())
	v.SetDimensions(80, 24)

	out := v.View()
	assert.Contains(t, out, "Bindery")
	assert.Contains(t, out, "Merge PDFs")
	assert.Contains(t, out, "Split a PDF")
	assert.Contains(t, out, "Settings")
	assert.Contains(t, out, "Quit")
}
