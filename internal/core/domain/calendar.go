package domain

import "time"

// DaysPerWeek is the upper bound on the number of days in a Week.
const DaysPerWeek = 7

// Day is a single calendar date within the grid.
type Day struct {
	// Date is the calendar date at midnight UTC.
	Date time.Time

	// Number is the day of the month, 1-31.
	Number int

	// WeekdayPrimary is the weekday name in the primary locale.
	WeekdayPrimary string

	// WeekdaySecondary is the weekday name in the secondary locale.
	WeekdaySecondary string
}

// Month returns the month the day belongs to.
func (d Day) Month() time.Month {
	return d.Date.Month()
}

// Weekday returns the day of the week.
func (d Day) Weekday() time.Weekday {
	return d.Date.Weekday()
}

// Week is an ordered run of contiguous Days, at most seven.
// Weeks at month or year boundaries may be shorter.
type Week struct {
	Days []Day
}

// Len returns the number of days in the week.
func (w *Week) Len() int {
	return len(w.Days)
}

// First returns the first day of the week.
// It panics on an empty week.
func (w *Week) First() Day {
	return w.Days[0]
}

// Last returns the last day of the week.
// It panics on an empty week.
func (w *Week) Last() Day {
	return w.Days[len(w.Days)-1]
}

// Months returns the distinct months of the week's days in order of
// first appearance.
func (w *Week) Months() []time.Month {
	var months []time.Month
	for _, d := range w.Days {
		m := d.Month()
		if len(months) == 0 || months[len(months)-1] != m {
			months = append(months, m)
		}
	}
	return months
}

// Month is a calendar month with its names and weeks.
type Month struct {
	// Number is the month of the year.
	Number time.Month

	// NamePrimary is the month name in the primary locale.
	NamePrimary string

	// NameSecondary is the month name in the secondary locale.
	NameSecondary string

	// Weeks are the weeks owned by this month, in chronological order.
	Weeks []*Week
}

// Grid is a full calendar year broken into months, weeks and days.
type Grid struct {
	Year   int
	Months []Month
}

// WeekCount returns the total number of weeks across all months.
func (g *Grid) WeekCount() int {
	n := 0
	for _, m := range g.Months {
		n += len(m.Weeks)
	}
	return n
}

// Days returns every day of the grid in order.
func (g *Grid) Days() []Day {
	var days []Day
	for _, m := range g.Months {
		for _, w := range m.Weeks {
			days = append(days, w.Days...)
		}
	}
	return days
}
