package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStyles(t *testing.T) {
	s := DefaultStyles()
	require.NotNil(t, s)

	// Rendering must not panic and must carry the text through.
	assert.Contains(t, s.Title.Render("Bindery"), "Bindery")
	assert.Contains(t, s.Error.Render("boom"), "boom")
}

func TestNewStyles_NilThemeFallsBack(t *testing.T) {
	s := NewStyles(nil)
	require.NotNil(t, s)
	assert.Equal(t, DefaultTheme(), s.Theme())
}

func TestNewStyles_UsesTheme(t *testing.T) {
	theme := &Theme{Primary: "#FF0000", Foreground: "#FFFFFF"}
	s := NewStyles(theme)
	require.NotNil(t, s)
	assert.Same(t, theme, s.Theme())
	assert.Contains(t, s.Normal.Render("x"), "x")
}
