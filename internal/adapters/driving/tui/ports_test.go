package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Ports)
		wantErr error
	}{
		{"all set", func(*Ports) {}, nil},
		{"missing session", func(p *Ports) { p.Session = nil }, ErrMissingSessionService},
		{"missing preview", func(p *Ports) { p.Preview = nil }, ErrMissingPreviewService},
		{"missing settings", func(p *Ports) { p.Settings = nil }, ErrMissingSettingsService},
		{"history is optional", func(p *Ports) { p.History = nil }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ports := newTestPorts(t)
			tt.mutate(ports)

			err := ports.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
