package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	k := DefaultKeyMap()

	tests := []struct {
		name    string
		keyStr  string
		binding string
		want    bool
	}{
		{"quit matches q", "q", "quit", true},
		{"quit matches ctrl+c", "ctrl+c", "quit", true},
		{"move up is capital K only", "k", "moveup", false},
		{"move up matches K", "K", "moveup", true},
		{"remove matches both keys", "x", "remove", true},
		{"unrelated key", "z", "add", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got bool
			switch tt.binding {
			case "quit":
				got = Matches(tt.keyStr, k.Quit)
			case "moveup":
				got = Matches(tt.keyStr, k.MoveUp)
			case "remove":
				got = Matches(tt.keyStr, k.Remove)
			case "add":
				got = Matches(tt.keyStr, k.Add)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultKeyMap_Help(t *testing.T) {
	k := DefaultKeyMap()

	require.Len(t, k.ListHelp(), 6)

	full := k.FullHelp()
	require.Len(t, full, 3)
	for _, row := range full {
		assert.NotEmpty(t, row)
	}
}
