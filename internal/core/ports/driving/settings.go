package driving

import "github.com/calendlam/calendlam/internal/core/domain"

// SettingsService manages booklet settings.
type SettingsService interface {
	// Get retrieves current settings, falling back to defaults for
	// anything not configured.
	Get() (*domain.BookletSettings, error)

	// Save persists settings after validating them.
	Save(settings *domain.BookletSettings) error

	// Set updates a single setting from its string form, e.g.
	// Set("booklet.year", "2027").
	Set(key, value string) error

	// Keys returns the names of all settings accepted by Set.
	Keys() []string

	// Validate checks the stored settings.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.BookletSettings
}
