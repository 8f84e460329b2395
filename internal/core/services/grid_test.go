package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calendlam/calendlam/internal/core/domain"
	"github.com/calendlam/calendlam/internal/locale"
)

func testLocales() domain.Locales {
	return domain.Locales{Primary: locale.Czech(), Secondary: locale.English()}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildGrid_FirstWeekOf2026(t *testing.T) {
	grid, err := BuildGrid(2026, testLocales(), DefaultGridOptions())
	require.NoError(t, err)

	first := grid.Months[0].Weeks[0]
	require.Equal(t, 4, first.Len(), "Jan 1 2026 is a Thursday")
	assert.Equal(t, date(2026, time.January, 1), first.First().Date)
	assert.Equal(t, date(2026, time.January, 4), first.Last().Date)
	assert.Equal(t, time.Thursday, first.First().Weekday())
	assert.Equal(t, "Čtvrtek", first.First().WeekdayPrimary)
	assert.Equal(t, "Thursday", first.First().WeekdaySecondary)
	assert.Equal(t, 1, first.First().Number)
}

func TestBuildGrid_2026Split(t *testing.T) {
	grid, err := BuildGrid(2026, testLocales(), DefaultGridOptions())
	require.NoError(t, err)

	require.Len(t, grid.Months, 12)
	assert.Equal(t, 63, grid.WeekCount())

	perMonth := make([]int, len(grid.Months))
	for i, m := range grid.Months {
		perMonth[i] = len(m.Weeks)
	}
	assert.Equal(t, []int{5, 5, 6, 5, 5, 5, 5, 6, 5, 5, 6, 5}, perMonth)

	assert.Equal(t, "Leden", grid.Months[0].NamePrimary)
	assert.Equal(t, "January", grid.Months[0].NameSecondary)
	assert.Equal(t, time.December, grid.Months[11].Number)

	last := grid.Months[11].Weeks[4]
	assert.Equal(t, date(2026, time.December, 28), last.First().Date)
	assert.Equal(t, date(2026, time.December, 31), last.Last().Date)
}

func TestBuildGrid_2026Continuous(t *testing.T) {
	grid, err := BuildGrid(2026, testLocales(), GridOptions{
		FirstWeekday: time.Monday,
		WeekMode:     domain.WeekModeContinuous,
	})
	require.NoError(t, err)

	assert.Equal(t, 53, grid.WeekCount())
	assert.Equal(t, 4, grid.Months[0].Weeks[0].Len())

	// The week of March 30 runs into April and belongs to March.
	march := grid.Months[2]
	spanning := march.Weeks[len(march.Weeks)-1]
	assert.Equal(t, date(2026, time.March, 30), spanning.First().Date)
	assert.Equal(t, date(2026, time.April, 5), spanning.Last().Date)
	assert.Equal(t, []time.Month{time.March, time.April}, spanning.Months())
	assert.Equal(t, date(2026, time.April, 6), grid.Months[3].Weeks[0].First().Date)
}

func TestBuildGrid_SundayFirst(t *testing.T) {
	grid, err := BuildGrid(2026, testLocales(), GridOptions{
		FirstWeekday: time.Sunday,
		WeekMode:     domain.WeekModeSplit,
	})
	require.NoError(t, err)

	first := grid.Months[0].Weeks[0]
	assert.Equal(t, 3, first.Len())
	assert.Equal(t, time.Sunday, grid.Months[0].Weeks[1].First().Weekday())
}

func TestBuildGrid_YearStartingOnFirstWeekday(t *testing.T) {
	// Jan 1 2024 is a Monday.
	grid, err := BuildGrid(2024, testLocales(), DefaultGridOptions())
	require.NoError(t, err)

	assert.Equal(t, domain.DaysPerWeek, grid.Months[0].Weeks[0].Len())
	assert.Len(t, grid.Days(), 366)
}

// TestBuildGrid_Completeness checks that every date of every year appears
// exactly once, in order, for both week modes.
func TestBuildGrid_Completeness(t *testing.T) {
	for _, mode := range domain.AllWeekModes() {
		for year := 1900; year <= 2100; year++ {
			for _, first := range []time.Weekday{time.Monday, time.Sunday} {
				grid, err := BuildGrid(year, testLocales(), GridOptions{FirstWeekday: first, WeekMode: mode})
				require.NoError(t, err)

				days := grid.Days()
				want := date(year, time.January, 1)
				for _, d := range days {
					if !assert.Equal(t, want, d.Date, "%s %d", mode, year) {
						break
					}
					want = want.AddDate(0, 0, 1)
				}
				require.Equal(t, date(year+1, time.January, 1), want, "%s %d", mode, year)
			}
		}
	}
}

// TestBuildGrid_WeekShape checks week length and month spanning rules.
func TestBuildGrid_WeekShape(t *testing.T) {
	for _, mode := range domain.AllWeekModes() {
		for year := 2000; year <= 2030; year++ {
			grid, err := BuildGrid(year, testLocales(), GridOptions{FirstWeekday: time.Monday, WeekMode: mode})
			require.NoError(t, err)

			for _, m := range grid.Months {
				for _, w := range m.Weeks {
					require.NotZero(t, w.Len())
					require.LessOrEqual(t, w.Len(), domain.DaysPerWeek)
					assert.Equal(t, m.Number, w.First().Month(), "week belongs to the month of its first day")

					if mode == domain.WeekModeSplit {
						assert.Len(t, w.Months(), 1, "split weeks never span months")
					} else {
						assert.LessOrEqual(t, len(w.Months()), 2)
					}

					// Only the first week of the year, or a split week
					// starting a month, may start on another weekday.
					if w.First().Weekday() != time.Monday {
						startsYear := w.First().Date.YearDay() == 1
						startsMonth := mode == domain.WeekModeSplit && w.First().Number == 1
						assert.True(t, startsYear || startsMonth, "%s", w.First().Date)
					}
				}
			}
		}
	}
}

func TestBuildGrid_ConfigurationErrors(t *testing.T) {
	shortWeekdays := testLocales()
	shortWeekdays.Primary.Weekdays = shortWeekdays.Primary.Weekdays[:6]

	shortMonths := testLocales()
	shortMonths.Secondary.Months = shortMonths.Secondary.Months[:11]

	tests := []struct {
		name    string
		year    int
		locales domain.Locales
		opts    GridOptions
	}{
		{"six weekday names", 2026, shortWeekdays, DefaultGridOptions()},
		{"eleven month names", 2026, shortMonths, DefaultGridOptions()},
		{"year zero", 0, testLocales(), DefaultGridOptions()},
		{"invalid week mode", 2026, testLocales(), GridOptions{FirstWeekday: time.Monday, WeekMode: "x"}},
		{"invalid weekday", 2026, testLocales(), GridOptions{FirstWeekday: 7, WeekMode: domain.WeekModeSplit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := BuildGrid(tt.year, tt.locales, tt.opts)
			assert.Nil(t, grid)
			assert.ErrorIs(t, err, domain.ErrConfiguration)
		})
	}
}

func BenchmarkBuildGrid(b *testing.B) {
	locales := testLocales()
	opts := DefaultGridOptions()
	for i := 0; i < b.N; i++ {
		_, _ = BuildGrid(2026, locales, opts)
	}
}
