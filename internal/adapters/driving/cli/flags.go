package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calendlam/calendlam/internal/core/domain"
)

// bookletFlagNames lists the flags that override stored settings.
var bookletFlagNames = []string{
	"year", "pages-per-signature", "first-weekday", "week-mode",
	"labels", "primary-locale", "secondary-locale",
}

// addBookletFlags registers the settings override flags on cmd.
func addBookletFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntP("year", "y", 0, "calendar year (default from settings)")
	f.IntP("pages-per-signature", "p", 0, "pages per signature, positive and even")
	f.String("first-weekday", "", "weekday that starts a week, e.g. monday")
	f.String("week-mode", "", "split (weeks end at month ends) or continuous")
	f.String("labels", "", "month label locales: primary, secondary or both")
	f.String("primary-locale", "", "primary locale tag, e.g. cs")
	f.String("secondary-locale", "", "secondary locale tag, e.g. en")
}

// bookletFlagsChanged reports whether any override flag was given.
func bookletFlagsChanged(cmd *cobra.Command) bool {
	for _, name := range bookletFlagNames {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// bookletSettings returns the stored settings with flag overrides applied.
func bookletSettings(cmd *cobra.Command) (domain.BookletSettings, error) {
	if settingsService == nil {
		return domain.BookletSettings{}, errors.New("settings service not configured")
	}

	stored, err := settingsService.Get()
	if err != nil {
		return domain.BookletSettings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	s := *stored

	f := cmd.Flags()
	if f.Changed("year") {
		s.Year, _ = f.GetInt("year")
	}
	if f.Changed("pages-per-signature") {
		s.PagesPerSignature, _ = f.GetInt("pages-per-signature")
	}
	if f.Changed("first-weekday") {
		name, _ := f.GetString("first-weekday")
		wd, err := domain.ParseWeekday(name)
		if err != nil {
			return domain.BookletSettings{}, err
		}
		s.FirstWeekday = wd
	}
	if f.Changed("week-mode") {
		mode, _ := f.GetString("week-mode")
		s.WeekMode = domain.WeekMode(mode)
	}
	if f.Changed("labels") {
		labels, _ := f.GetString("labels")
		s.Labels = domain.LabelMode(labels)
	}
	if f.Changed("primary-locale") {
		s.PrimaryLocale, _ = f.GetString("primary-locale")
	}
	if f.Changed("secondary-locale") {
		s.SecondaryLocale, _ = f.GetString("secondary-locale")
	}

	if err := s.Validate(); err != nil {
		return domain.BookletSettings{}, err
	}
	return s, nil
}
