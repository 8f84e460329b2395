package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/calendlam/calendlam/internal/core/domain"
	"github.com/calendlam/calendlam/internal/core/ports/driven"
	"github.com/calendlam/calendlam/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyYear              = "booklet.year"
	keyPagesPerSignature = "booklet.pages_per_signature"
	keyFirstWeekday      = "booklet.first_weekday"
	keyWeekMode          = "booklet.week_mode"
	keyPrimaryLocale     = "locale.primary"
	keySecondaryLocale   = "locale.secondary"
	keyLabels            = "locale.labels"
	keyOutputDir         = "output.dir"
)

// SettingsService manages booklet settings.
type SettingsService struct {
	configStore driven.ConfigStore
	locales     driven.LocaleCatalog
}

// NewSettingsService creates a new settings service.
// The locales parameter is optional; without it locale tags are not checked.
func NewSettingsService(configStore driven.ConfigStore, locales driven.LocaleCatalog) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		locales:     locales,
	}
}

// Get retrieves current settings.
// Values that are not stored fall back to defaults. A stored weekday that
// cannot be parsed is reported as domain.ErrConfiguration.
func (s *SettingsService) Get() (*domain.BookletSettings, error) {
	defaults := domain.DefaultBookletSettings()

	firstWeekday := defaults.FirstWeekday
	if val := s.configStore.GetString(keyFirstWeekday); val != "" {
		wd, err := domain.ParseWeekday(val)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", keyFirstWeekday, err)
		}
		firstWeekday = wd
	}

	settings := &domain.BookletSettings{
		Year:              s.getInt(keyYear, defaults.Year),
		PagesPerSignature: s.getInt(keyPagesPerSignature, defaults.PagesPerSignature),
		FirstWeekday:      firstWeekday,
		WeekMode:          domain.WeekMode(s.getString(keyWeekMode, defaults.WeekMode.String())),
		Labels:            domain.LabelMode(s.getString(keyLabels, defaults.Labels.String())),
		PrimaryLocale:     s.getString(keyPrimaryLocale, defaults.PrimaryLocale),
		SecondaryLocale:   s.getString(keySecondaryLocale, defaults.SecondaryLocale),
		OutputDir:         s.getString(keyOutputDir, defaults.OutputDir),
	}

	return settings, nil
}

// Save validates and persists settings.
func (s *SettingsService) Save(settings *domain.BookletSettings) error {
	if err := s.check(settings); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyYear, settings.Year},
		{keyPagesPerSignature, settings.PagesPerSignature},
		{keyFirstWeekday, weekdayName(settings.FirstWeekday)},
		{keyWeekMode, settings.WeekMode.String()},
		{keyLabels, settings.Labels.String()},
		{keyPrimaryLocale, settings.PrimaryLocale},
		{keySecondaryLocale, settings.SecondaryLocale},
		{keyOutputDir, settings.OutputDir},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set updates a single setting from its string form.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	switch key {
	case keyYear:
		settings.Year, err = parseInt(key, value)
	case keyPagesPerSignature:
		settings.PagesPerSignature, err = parseInt(key, value)
	case keyFirstWeekday:
		settings.FirstWeekday, err = domain.ParseWeekday(value)
	case keyWeekMode:
		settings.WeekMode = domain.WeekMode(value)
	case keyLabels:
		settings.Labels = domain.LabelMode(value)
	case keyPrimaryLocale:
		settings.PrimaryLocale = value
	case keySecondaryLocale:
		settings.SecondaryLocale = value
	case keyOutputDir:
		settings.OutputDir = value
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrConfiguration, key)
	}
	if err != nil {
		return err
	}

	return s.Save(settings)
}

// Keys returns the names of all settings accepted by Set.
func (s *SettingsService) Keys() []string {
	return []string{
		keyYear,
		keyPagesPerSignature,
		keyFirstWeekday,
		keyWeekMode,
		keyPrimaryLocale,
		keySecondaryLocale,
		keyLabels,
		keyOutputDir,
	}
}

// Validate checks the stored settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return s.check(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.BookletSettings {
	return domain.DefaultBookletSettings()
}

// check validates settings and, when a catalog is available, the locale tags.
func (s *SettingsService) check(settings *domain.BookletSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if s.locales == nil {
		return nil
	}
	for _, tag := range []string{settings.PrimaryLocale, settings.SecondaryLocale} {
		if _, err := s.locales.Lookup(tag); err != nil {
			return err
		}
	}
	return nil
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", domain.ErrConfiguration, key, value)
	}
	return n, nil
}

func weekdayName(wd time.Weekday) string {
	return strings.ToLower(wd.String())
}
