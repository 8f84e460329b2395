package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calendlam/calendlam/internal/adapters/driven/storage/memory"
	"github.com/calendlam/calendlam/internal/core/domain"
	"github.com/calendlam/calendlam/internal/core/services"
	"github.com/calendlam/calendlam/internal/locale"
)

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestExtractLayoutID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{"valid layout URI", "calendlam://layouts/abc-123", "abc-123"},
		{"invalid prefix", "file://layouts/abc-123", ""},
		{"nested path", "calendlam://layouts/abc/def", ""},
		{"list URI", "calendlam://layouts", ""},
		{"empty URI", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractLayoutID(tt.uri))
		})
	}
}

func TestServer_handleSettingsResource(t *testing.T) {
	server, store := testServer(t)
	_ = store.Set("booklet.year", int64(2031))

	result, err := server.handleSettingsResource(context.Background(), readRequest("calendlam://settings"))

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)

	var info settingsInfo
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &info))
	assert.Equal(t, 2031, info.Year)
	assert.Equal(t, "monday", info.FirstWeekday)
	assert.Equal(t, "both", info.Labels)
}

func TestServer_LayoutResources(t *testing.T) {
	ctx := context.Background()
	service := services.NewBookletService(locale.Default(), memory.NewLayoutStore())
	server, err := NewServer(&Ports{Booklet: service})
	require.NoError(t, err)

	settings := domain.DefaultBookletSettings()
	settings.PagesPerSignature = 32
	booklet, err := service.Build(ctx, settings)
	require.NoError(t, err)
	require.NoError(t, service.Record(ctx, booklet))

	t.Run("list", func(t *testing.T) {
		result, err := server.handleLayoutsResource(ctx, readRequest("calendlam://layouts"))
		require.NoError(t, err)

		var infos []layoutInfo
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &infos))
		require.Len(t, infos, 1)
		assert.Equal(t, booklet.ID, infos[0].ID)
		assert.Equal(t, 2, infos[0].Signatures)
		assert.Nil(t, infos[0].PrintOrder)
	})

	t.Run("single", func(t *testing.T) {
		uri := "calendlam://layouts/" + booklet.ID
		result, err := server.handleLayoutResource(ctx, readRequest(uri))
		require.NoError(t, err)

		var info layoutInfo
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &info))
		assert.Equal(t, booklet.ID, info.ID)
		require.Len(t, info.PrintOrder, 64)
		assert.Equal(t, 31, info.PrintOrder[0])
		assert.Equal(t, domain.BlankIndex, info.PrintOrder[32])
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := server.handleLayoutResource(ctx, readRequest("calendlam://layouts/nope"))
		assert.Error(t, err)
	})

	t.Run("malformed uri", func(t *testing.T) {
		_, err := server.handleLayoutResource(ctx, readRequest("calendlam://layouts/a/b"))
		assert.Error(t, err)
	})
}

func TestServer_LayoutTool_DoesNotRecord(t *testing.T) {
	ctx := context.Background()
	server, _ := testServer(t)

	_, _, err := server.handleLayout(ctx, nil, LayoutInput{})
	require.NoError(t, err)
	_, _, err = server.handleLocate(ctx, nil, LocateInput{Date: "2026-03-31"})
	require.NoError(t, err)

	result, err := server.handleLayoutsResource(ctx, readRequest("calendlam://layouts"))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", result.Contents[0].Text)
}

func TestServer_LayoutsResource_NoHistory(t *testing.T) {
	server, err := NewServer(&Ports{Booklet: services.NewBookletService(locale.Default(), nil)})
	require.NoError(t, err)

	_, err = server.handleLayoutsResource(context.Background(), readRequest("calendlam://layouts"))

	assert.ErrorIs(t, err, services.ErrNoLayoutStore)
}
