package domain

import (
	"fmt"
	"strings"
	"time"
)

const unknownDescription = "Unknown"

// WeekMode defines how the year is cut into weeks.
type WeekMode string

// Available week modes.
const (
	// WeekModeSplit ends a week at the first weekday, at every month
	// boundary and at the end of the year. Weeks never span months.
	WeekModeSplit WeekMode = "split"

	// WeekModeContinuous ends a week only at the first weekday and at the
	// end of the year. Weeks may span two months.
	WeekModeContinuous WeekMode = "continuous"
)

// IsValid returns true if the week mode is recognised.
func (m WeekMode) IsValid() bool {
	switch m {
	case WeekModeSplit, WeekModeContinuous:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m WeekMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m WeekMode) Description() string {
	switch m {
	case WeekModeSplit:
		return "Split (weeks break at month boundaries)"
	case WeekModeContinuous:
		return "Continuous (weeks may span two months)"
	default:
		return unknownDescription
	}
}

// LabelMode selects which locales appear in page month labels.
type LabelMode string

// Available label modes.
const (
	LabelPrimary   LabelMode = "primary"
	LabelSecondary LabelMode = "secondary"
	LabelBoth      LabelMode = "both"
)

// IsValid returns true if the label mode is recognised.
func (m LabelMode) IsValid() bool {
	switch m {
	case LabelPrimary, LabelSecondary, LabelBoth:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m LabelMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m LabelMode) Description() string {
	switch m {
	case LabelPrimary:
		return "Primary locale only"
	case LabelSecondary:
		return "Secondary locale only"
	case LabelBoth:
		return "Both locales"
	default:
		return unknownDescription
	}
}

// AllWeekModes returns all available week modes.
func AllWeekModes() []WeekMode {
	return []WeekMode{WeekModeSplit, WeekModeContinuous}
}

// AllLabelModes returns all available label modes.
func AllLabelModes() []LabelMode {
	return []LabelMode{LabelPrimary, LabelSecondary, LabelBoth}
}

// Year bounds accepted by the calendar builder.
const (
	MinYear = 1
	MaxYear = 9999
)

// BookletSettings holds everything one pagination run needs.
type BookletSettings struct {
	// Year is the calendar year to lay out.
	Year int

	// PagesPerSignature is the signature capacity. Must be positive and even.
	PagesPerSignature int

	// FirstWeekday is the weekday that starts a new week.
	FirstWeekday time.Weekday

	// WeekMode controls whether weeks break at month boundaries.
	WeekMode WeekMode

	// Labels selects the locales used in month labels.
	Labels LabelMode

	// PrimaryLocale and SecondaryLocale are BCP 47 tags of the name tables.
	PrimaryLocale   string
	SecondaryLocale string

	// OutputDir is where rendered pages are written.
	OutputDir string
}

// DefaultBookletSettings returns settings with sensible defaults.
func DefaultBookletSettings() BookletSettings {
	return BookletSettings{
		Year:              2026,
		PagesPerSignature: 16,
		FirstWeekday:      time.Monday,
		WeekMode:          WeekModeSplit,
		Labels:            LabelBoth,
		PrimaryLocale:     "cs",
		SecondaryLocale:   "en",
		OutputDir:         "output",
	}
}

// Validate checks the settings before any page is produced.
// Locale tags are checked when the name tables are resolved.
func (s BookletSettings) Validate() error {
	if s.Year < MinYear || s.Year > MaxYear {
		return fmt.Errorf("%w: year %d out of range %d-%d", ErrConfiguration, s.Year, MinYear, MaxYear)
	}
	if err := ValidatePagesPerSignature(s.PagesPerSignature); err != nil {
		return err
	}
	if s.FirstWeekday < time.Sunday || s.FirstWeekday > time.Saturday {
		return fmt.Errorf("%w: invalid first weekday %d", ErrConfiguration, s.FirstWeekday)
	}
	if !s.WeekMode.IsValid() {
		return fmt.Errorf("%w: invalid week mode %q", ErrConfiguration, s.WeekMode)
	}
	if !s.Labels.IsValid() {
		return fmt.Errorf("%w: invalid label mode %q", ErrConfiguration, s.Labels)
	}
	return nil
}

// ValidatePagesPerSignature checks that a signature capacity is a positive
// even number, so that every signature splits into whole sheets.
func ValidatePagesPerSignature(n int) error {
	if n <= 0 || n%2 != 0 {
		return fmt.Errorf("%w: pages per signature must be a positive even number, got %d", ErrConfiguration, n)
	}
	return nil
}

// ParseWeekday parses an English weekday name such as "monday" or "Mon".
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := strings.ToLower(wd.String())
		if s == name || (len(s) >= 3 && strings.HasPrefix(name, s)) {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown weekday %q", ErrConfiguration, s)
}
