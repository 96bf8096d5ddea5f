package monthgrid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridFor(t *testing.T, year int, month time.Month) Grid {
	t.Helper()
	return Build(time.Date(year, month, 15, 0, 0, 0, 0, time.UTC))
}

// assertCoversMonth checks that every date of the month appears exactly once
// and that out-of-month cells are flagged for dimmed rendering
func assertCoversMonth(t *testing.T, grid Grid, daysInMonth int) {
	t.Helper()

	seen := make(map[int]int)
	for _, week := range grid.Weeks {
		for _, day := range week {
			if day.InMonth {
				assert.Equal(t, grid.Month, day.Date.Month())
				seen[day.Date.Day()]++
			} else {
				assert.NotEqual(t, grid.Month, day.Date.Month())
			}
		}
	}

	require.Len(t, seen, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		assert.Equal(t, 1, seen[d], "day %d", d)
	}
}

func TestBuild_LeapFebruary(t *testing.T) {
	grid := gridFor(t, 2024, time.February)

	assertCoversMonth(t, grid, 29)
	assert.Len(t, grid.Weeks, 5)

	// Feb 2024 starts on a Thursday; the leading context reaches back to
	// Monday Jan 29
	first := grid.Weeks[0][0]
	assert.False(t, first.InMonth)
	assert.Equal(t, time.Date(2024, time.January, 29, 0, 0, 0, 0, time.UTC), first.Date)
}

func TestBuild_NonLeapFebruary(t *testing.T) {
	grid := gridFor(t, 2023, time.February)

	assertCoversMonth(t, grid, 28)
	assert.Len(t, grid.Weeks, 5)
}

func TestBuild_MonthStartingOnSunday(t *testing.T) {
	// September 2024 starts on a Sunday, forcing a 6-row grid
	grid := gridFor(t, 2024, time.September)

	assertCoversMonth(t, grid, 30)
	assert.Len(t, grid.Weeks, 6)

	// The first row holds six context days before Sunday the 1st
	assert.False(t, grid.Weeks[0][0].InMonth)
	assert.Equal(t, time.Date(2024, time.August, 26, 0, 0, 0, 0, time.UTC), grid.Weeks[0][0].Date)
	assert.True(t, grid.Weeks[0][6].InMonth)
	assert.Equal(t, 1, grid.Weeks[0][6].Date.Day())
}

func TestBuild_MonthStartingOnMonday(t *testing.T) {
	// July 2024 starts on a Monday: no leading context days
	grid := gridFor(t, 2024, time.July)

	assertCoversMonth(t, grid, 31)
	assert.Len(t, grid.Weeks, 5)
	assert.True(t, grid.Weeks[0][0].InMonth)
	assert.Equal(t, 1, grid.Weeks[0][0].Date.Day())
}

func TestBuild_RowsAlwaysMondayFirst(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		grid := gridFor(t, 2025, month)
		for _, week := range grid.Weeks {
			assert.Equal(t, time.Monday, week[0].Date.Weekday())
			assert.Equal(t, time.Sunday, week[6].Date.Weekday())
		}
	}
}

func TestBuild_ReferenceDayPositionIrrelevant(t *testing.T) {
	a := Build(time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC))
	b := Build(time.Date(2026, time.May, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, a, b)
}
