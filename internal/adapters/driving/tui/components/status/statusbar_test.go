package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calendlam/calendlam/internal/adapters/driving/tui/keymap"
	"github.com/calendlam/calendlam/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateLoading, bar.State())
	assert.Equal(t, "", bar.Message())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestBar_View(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		message  string
		contains []string
	}{
		{"loading", StateLoading, "", []string{"Building booklet...", "enter: open"}},
		{"ready with summary", StateReady, "2026: 4 signatures", []string{"2026: 4 signatures", "q: quit"}},
		{"ready without summary", StateReady, "", []string{"Ready"}},
		{"error", StateError, "bad year", []string{"Error: bad year", "r: reload"}},
		{"error without message", StateError, "", []string{"Error"}},
		{"help", StateHelp, "", []string{"Help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(120)
			bar.SetState(tt.state)
			bar.SetMessage(tt.message)

			view := bar.View()
			for _, s := range tt.contains {
				assert.Contains(t, view, s)
			}
		})
	}
}

func TestBar_NarrowWidth(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(10)
	bar.SetState(StateReady)
	bar.SetMessage("summary")

	assert.NotEmpty(t, bar.View())
}
