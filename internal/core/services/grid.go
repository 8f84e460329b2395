package services

import (
	"fmt"
	"time"

	"github.com/calendlam/calendlam/internal/core/domain"
	"github.com/calendlam/calendlam/internal/logger"
)

// GridOptions controls how a year is cut into weeks.
type GridOptions struct {
	// FirstWeekday is the weekday that opens a new week.
	FirstWeekday time.Weekday

	// WeekMode decides whether weeks also break at month boundaries.
	WeekMode domain.WeekMode
}

// DefaultGridOptions returns Monday-first weeks split at month boundaries.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		FirstWeekday: time.Monday,
		WeekMode:     domain.WeekModeSplit,
	}
}

// BuildGrid walks every date of the year from January 1 to December 31 and
// groups the dates into months and weeks.
//
// A new week starts on opts.FirstWeekday. In split mode a new week also
// starts with every month, so a week never spans two months. In continuous
// mode a week crossing a month boundary stays whole and belongs to the month
// of its first day. Either way a week never extends past the year, so the
// first and last weeks of the year may be short.
//
// The name tables are validated once up front; a malformed table fails with
// domain.ErrConfiguration before any day is produced.
func BuildGrid(year int, locales domain.Locales, opts GridOptions) (*domain.Grid, error) {
	if year < domain.MinYear || year > domain.MaxYear {
		return nil, fmt.Errorf("%w: year %d out of range", domain.ErrConfiguration, year)
	}
	if err := locales.Validate(); err != nil {
		return nil, err
	}
	if !opts.WeekMode.IsValid() {
		return nil, fmt.Errorf("%w: invalid week mode %q", domain.ErrConfiguration, opts.WeekMode)
	}
	if opts.FirstWeekday < time.Sunday || opts.FirstWeekday > time.Saturday {
		return nil, fmt.Errorf("%w: invalid first weekday %d", domain.ErrConfiguration, opts.FirstWeekday)
	}

	grid := &domain.Grid{Year: year, Months: make([]domain.Month, 0, 12)}
	var week *domain.Week

	first := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for d := first; d.Year() == year; d = d.AddDate(0, 0, 1) {
		newMonth := len(grid.Months) == 0 || grid.Months[len(grid.Months)-1].Number != d.Month()
		if newMonth {
			grid.Months = append(grid.Months, domain.Month{
				Number:        d.Month(),
				NamePrimary:   locales.Primary.Month(d.Month()),
				NameSecondary: locales.Secondary.Month(d.Month()),
			})
		}

		if week == nil || d.Weekday() == opts.FirstWeekday ||
			(newMonth && opts.WeekMode == domain.WeekModeSplit) {
			week = &domain.Week{Days: make([]domain.Day, 0, domain.DaysPerWeek)}
			m := &grid.Months[len(grid.Months)-1]
			m.Weeks = append(m.Weeks, week)
		}

		week.Days = append(week.Days, domain.Day{
			Date:             d,
			Number:           d.Day(),
			WeekdayPrimary:   locales.Primary.Weekday(d.Weekday()),
			WeekdaySecondary: locales.Secondary.Weekday(d.Weekday()),
		})
	}

	logger.Debug("grid: year %d, %d months, %d weeks (%s, first weekday %s)",
		year, len(grid.Months), grid.WeekCount(), opts.WeekMode, opts.FirstWeekday)
	return grid, nil
}
