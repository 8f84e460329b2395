package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calendlam/calendlam/internal/adapters/driven/storage/memory"
	"github.com/calendlam/calendlam/internal/core/services"
	"github.com/calendlam/calendlam/internal/locale"
)

// testServer returns a server backed by in-memory stores.
func testServer(t *testing.T) (*Server, *memory.ConfigStore) {
	t.Helper()
	store := memory.NewConfigStore()
	server, err := NewServer(&Ports{
		Booklet:  services.NewBookletService(locale.Default(), memory.NewLayoutStore()),
		Settings: services.NewSettingsService(store, locale.Default()),
	})
	require.NoError(t, err)
	return server, store
}

func TestNewServer(t *testing.T) {
	t.Run("nil booklet service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingBookletService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, _ := testServer(t)
		assert.NotNil(t, server)
		assert.NotNil(t, server.Handler())
	})
}

func TestPorts_Validate(t *testing.T) {
	var nilPorts *Ports
	assert.ErrorIs(t, nilPorts.Validate(), ErrMissingBookletService)
	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingBookletService)

	ports := &Ports{Booklet: services.NewBookletService(locale.Default(), nil)}
	assert.NoError(t, ports.Validate(), "settings are optional")

	settings, err := ports.settings()
	require.NoError(t, err)
	assert.Equal(t, 2026, settings.Year)
}
