package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calendlam/calendlam/internal/adapters/driven/storage/memory"
	"github.com/calendlam/calendlam/internal/adapters/driving/tui/messages"
	"github.com/calendlam/calendlam/internal/core/domain"
	"github.com/calendlam/calendlam/internal/core/services"
	"github.com/calendlam/calendlam/internal/locale"
)

func testPorts(store *memory.ConfigStore) *Ports {
	return &Ports{
		Booklet:  services.NewBookletService(locale.Default(), nil),
		Settings: services.NewSettingsService(store, locale.Default()),
	}
}

// loadedApp returns an app that has built the default 2026 booklet.
func loadedApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(testPorts(memory.NewConfigStore()))
	require.NoError(t, err)

	app.Update(app.loadBooklet())
	require.NoError(t, app.Err())
	require.NotNil(t, app.Booklet())
	return app
}

func press(app *App, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		app.Update(msg)
	}
}

func TestNewApp_RequiresBookletService(t *testing.T) {
	_, err := NewApp(nil)
	assert.ErrorIs(t, err, ErrMissingBookletService)

	_, err = NewApp(&Ports{})
	assert.ErrorIs(t, err, ErrMissingBookletService)
}

func TestApp_Init(t *testing.T) {
	app, err := NewApp(testPorts(memory.NewConfigStore()))
	require.NoError(t, err)

	assert.NotNil(t, app.Init())
	assert.Equal(t, messages.ViewSignatures, app.CurrentView())
}

func TestApp_LoadBooklet(t *testing.T) {
	app := loadedApp(t)

	assert.Len(t, app.signatures.Rows(), 4)
	assert.Contains(t, app.signatures.Rows()[0], "Signature 1  sheets 1-8  pages 1-16")
	assert.Contains(t, app.signatures.Rows()[3], "(1 blank)")
	assert.Contains(t, app.View(), "calendlam · 2026")
	assert.Contains(t, app.View(), "63 pages, 1 blank, 4 signatures, 32 sheets")
}

func TestApp_LoadBooklet_WithSettings(t *testing.T) {
	app, err := NewApp(&Ports{Booklet: services.NewBookletService(locale.Default(), nil)})
	require.NoError(t, err)

	settings := domain.DefaultBookletSettings()
	settings.Year = 2027
	settings.PagesPerSignature = 32
	app.WithSettings(settings).WithContext(context.Background())

	app.Update(app.loadBooklet())

	require.NoError(t, app.Err())
	assert.Equal(t, 2027, app.Booklet().Year)
	assert.Len(t, app.signatures.Rows(), 2)
}

func TestApp_LoadBooklet_MissingSettings(t *testing.T) {
	app, err := NewApp(&Ports{Booklet: services.NewBookletService(locale.Default(), nil)})
	require.NoError(t, err)

	app.Update(app.loadBooklet())

	assert.ErrorIs(t, app.Err(), ErrMissingSettings)
}

func TestApp_LoadBooklet_Error(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("booklet.pages_per_signature", int64(7))

	app, err := NewApp(testPorts(store))
	require.NoError(t, err)

	app.Update(app.loadBooklet())

	assert.ErrorIs(t, app.Err(), domain.ErrConfiguration)
	assert.Nil(t, app.Booklet())
	assert.Contains(t, app.View(), "Error:")

	press(app, "enter")
	assert.Equal(t, messages.ViewSignatures, app.CurrentView())
}

func TestApp_Navigation(t *testing.T) {
	app := loadedApp(t)

	press(app, "down", "enter")
	assert.Equal(t, messages.ViewSheets, app.CurrentView())
	assert.Len(t, app.sheets.Rows(), 8)
	assert.Contains(t, app.View(), "signature 2")
	assert.Contains(t, app.sheets.Rows()[0], "Sheet 1 (#9)")

	press(app, "j", "enter")
	assert.Equal(t, messages.ViewSheet, app.CurrentView())
	view := app.View()
	assert.Contains(t, view, "FRONT")
	assert.Contains(t, view, "BACK")
	assert.Contains(t, view, "sheet 2 of 8 in signature, #10 in booklet")

	press(app, "esc")
	assert.Equal(t, messages.ViewSheets, app.CurrentView())
	assert.Equal(t, 1, app.sheets.Selected())

	press(app, "esc")
	assert.Equal(t, messages.ViewSignatures, app.CurrentView())
}

func TestApp_SheetView_StepsThroughSheets(t *testing.T) {
	app := loadedApp(t)

	press(app, "enter", "enter")
	require.Equal(t, messages.ViewSheet, app.CurrentView())

	press(app, "up")
	assert.Equal(t, 0, app.sheet, "stays on first sheet")

	press(app, "down", "down", "down", "down", "down", "down", "down", "down", "down")
	assert.Equal(t, 7, app.sheet, "stops at last sheet")
	assert.Equal(t, 7, app.sheets.Selected())
}

func TestApp_SheetView_Blank(t *testing.T) {
	app := loadedApp(t)

	// The last signature starts with the padding page on its front.
	press(app, "G", "enter", "enter")

	assert.Contains(t, app.View(), "blank page")
}

func TestApp_Help(t *testing.T) {
	app := loadedApp(t)
	press(app, "enter")

	press(app, "?")
	assert.Equal(t, messages.ViewHelp, app.CurrentView())
	assert.Contains(t, app.View(), "reload")

	press(app, "?")
	assert.Equal(t, messages.ViewSheets, app.CurrentView())

	press(app, "?", "esc")
	assert.Equal(t, messages.ViewSheets, app.CurrentView())
}

func TestApp_Quit(t *testing.T) {
	app := loadedApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_Reload(t *testing.T) {
	store := memory.NewConfigStore()
	app, err := NewApp(testPorts(store))
	require.NoError(t, err)
	app.Update(app.loadBooklet())
	require.Equal(t, 2026, app.Booklet().Year)

	_ = store.Set("booklet.year", int64(2030))
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotNil(t, cmd)

	_, cmd = app.Update(cmd())
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.Equal(t, 2030, app.Booklet().Year)
}

func TestApp_WindowSize(t *testing.T) {
	app := loadedApp(t)

	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, app.width)
	assert.Equal(t, 40, app.height)
}

func TestApp_ErrorOccurred(t *testing.T) {
	app := loadedApp(t)

	app.Update(messages.ErrorOccurred{Err: errors.New("disk full")})

	assert.EqualError(t, app.Err(), "disk full")
	assert.Contains(t, app.View(), "Error: disk full")
}

func TestApp_ViewChanged(t *testing.T) {
	app := loadedApp(t)

	app.Update(messages.ViewChanged{View: messages.ViewHelp})

	assert.Equal(t, messages.ViewHelp, app.CurrentView())
}

func TestPageLabel(t *testing.T) {
	app := loadedApp(t)
	sheet := app.Booklet().Signatures[0].Sheets[0]

	assert.Equal(t, "p16 30.3.-31.3.", pageLabel(sheet.Front))
	assert.Equal(t, "p1 1.1.-4.1.", pageLabel(sheet.Back))
	assert.Equal(t, "blank", pageLabel(domain.BlankPage{Position: 3}))
}
