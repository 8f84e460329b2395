package domain

import (
	"fmt"
	"time"
)

// Required lengths of locale name tables.
const (
	WeekdayNameCount = 7
	MonthNameCount   = 12
)

// NameTable holds the day and month names of one locale.
// Tables are shared read-only between runs and must not be modified
// after construction.
type NameTable struct {
	// Tag is the BCP 47 language tag, e.g. "cs" or "en".
	Tag string

	// Weekdays lists weekday names starting with Monday.
	Weekdays []string

	// Months lists month names starting with January.
	Months []string
}

// Validate checks that the table has exactly 7 weekday and 12 month names.
func (t NameTable) Validate() error {
	if len(t.Weekdays) != WeekdayNameCount {
		return fmt.Errorf("%w: locale %q has %d weekday names, want %d",
			ErrConfiguration, t.Tag, len(t.Weekdays), WeekdayNameCount)
	}
	if len(t.Months) != MonthNameCount {
		return fmt.Errorf("%w: locale %q has %d month names, want %d",
			ErrConfiguration, t.Tag, len(t.Months), MonthNameCount)
	}
	return nil
}

// Weekday returns the name of the given weekday.
// The table must have been validated.
func (t NameTable) Weekday(wd time.Weekday) string {
	// Monday-first table, time.Weekday is Sunday-first.
	return t.Weekdays[(int(wd)+6)%7]
}

// Month returns the name of the given month.
// The table must have been validated.
func (t NameTable) Month(m time.Month) string {
	return t.Months[m-1]
}

// Locales pairs the two name tables used for dual-language calendars.
type Locales struct {
	Primary   NameTable
	Secondary NameTable
}

// Validate checks both tables.
func (l Locales) Validate() error {
	if err := l.Primary.Validate(); err != nil {
		return err
	}
	return l.Secondary.Validate()
}
