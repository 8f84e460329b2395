package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/calendlam/calendlam/internal/core/domain"
	"github.com/calendlam/calendlam/internal/logger"
)

// Separators used in month labels.
const (
	monthSeparator  = " / "
	localeSeparator = " · "
)

// SequencePages flattens the grid into one content page per week, in
// chronological order. Each page carries a month label built from the
// distinct months of its days in the requested locales.
//
// Every week must hold between one and seven contiguous days; anything else
// is an upstream defect and fails with domain.ErrInvariantViolation.
func SequencePages(grid *domain.Grid, labels domain.LabelMode) ([]domain.ContentPage, error) {
	if grid == nil {
		return nil, fmt.Errorf("%w: nil grid", domain.ErrInvariantViolation)
	}
	if !labels.IsValid() {
		return nil, fmt.Errorf("%w: invalid label mode %q", domain.ErrConfiguration, labels)
	}

	names := make(map[time.Month]domain.Month, len(grid.Months))
	for _, m := range grid.Months {
		names[m.Number] = m
	}

	pages := make([]domain.ContentPage, 0, grid.WeekCount())
	for _, m := range grid.Months {
		for _, w := range m.Weeks {
			if err := checkWeek(w); err != nil {
				return nil, fmt.Errorf("page %d: %w", len(pages), err)
			}
			label, err := monthLabel(w, names, labels)
			if err != nil {
				return nil, fmt.Errorf("page %d: %w", len(pages), err)
			}
			pages = append(pages, domain.ContentPage{
				Position:   len(pages),
				Week:       w,
				MonthLabel: label,
			})
		}
	}

	logger.Debug("pages: %d week pages", len(pages))
	return pages, nil
}

// checkWeek verifies that a week holds 1-7 consecutive dates.
func checkWeek(w *domain.Week) error {
	if w == nil || len(w.Days) == 0 || len(w.Days) > domain.DaysPerWeek {
		n := 0
		if w != nil {
			n = len(w.Days)
		}
		return fmt.Errorf("%w: week has %d days", domain.ErrInvariantViolation, n)
	}
	for i := 1; i < len(w.Days); i++ {
		want := w.Days[i-1].Date.AddDate(0, 0, 1)
		if !w.Days[i].Date.Equal(want) {
			return fmt.Errorf("%w: week is not contiguous at %s",
				domain.ErrInvariantViolation, w.Days[i].Date.Format(time.DateOnly))
		}
	}
	return nil
}

// monthLabel joins the distinct month names of a week.
func monthLabel(w *domain.Week, names map[time.Month]domain.Month, mode domain.LabelMode) (string, error) {
	months := w.Months()
	primary := make([]string, len(months))
	secondary := make([]string, len(months))
	for i, num := range months {
		m, ok := names[num]
		if !ok {
			return "", fmt.Errorf("%w: no month entry for %s", domain.ErrInvariantViolation, num)
		}
		primary[i] = m.NamePrimary
		secondary[i] = m.NameSecondary
	}

	p := strings.Join(primary, monthSeparator)
	s := strings.Join(secondary, monthSeparator)
	switch mode {
	case domain.LabelPrimary:
		return p, nil
	case domain.LabelSecondary:
		return s, nil
	default:
		if p == s {
			return p, nil
		}
		return p + localeSeparator + s, nil
	}
}
