// Package monthgrid produces the display matrix of calendar weeks covering a
// month, used for picking a single target date. This is a separate calendar
// concept from the 7-day scheduling window.
package monthgrid

import "time"

// Day is one cell of the month grid
type Day struct {
	Date time.Time

	// InMonth is false for leading/trailing context days that belong to
	// the adjacent month and should render dimmed
	InMonth bool
}

// Grid is a rectangular matrix of weeks. The row count varies with month
// length and starting weekday (5 or 6 rows).
type Grid struct {
	Year  int
	Month time.Month
	Weeks [][7]Day
}

// Build computes the Monday-first week grid covering the month containing ref.
// The grid spans from the Monday of the week holding the 1st through the
// Sunday of the week holding the last day of the month.
func Build(ref time.Time) Grid {
	year, month := ref.Year(), ref.Month()

	first := time.Date(year, month, 1, 0, 0, 0, 0, ref.Location())
	last := first.AddDate(0, 1, -1)

	start := first.AddDate(0, 0, -mondayIndex(first.Weekday()))
	end := last.AddDate(0, 0, 6-mondayIndex(last.Weekday()))

	grid := Grid{Year: year, Month: month}

	for cursor := start; !cursor.After(end); cursor = cursor.AddDate(0, 0, 7) {
		var week [7]Day
		for i := 0; i < 7; i++ {
			date := cursor.AddDate(0, 0, i)
			week[i] = Day{
				Date:    date,
				InMonth: date.Month() == month && date.Year() == year,
			}
		}
		grid.Weeks = append(grid.Weeks, week)
	}

	return grid
}

// mondayIndex maps a weekday to its offset within a Monday-first week
// (Monday=0 .. Sunday=6)
func mondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}
