package scheduler

import (
	"time"

	"github.com/google/uuid"

	"github.com/SojoC/nexo-ppeam/pkg/core/model"
)

// WeekSpanDays is the fixed length of the scheduling window
const WeekSpanDays = 7

// BuildWeek expands the request's start date into seven ordered day
// schedules, populating each with a location assignment for every selected
// location whose eligible weekdays contain that date's weekday.
//
// Apart from the generated schedule ID the builder is pure: identical
// requests produce structurally identical output. Days with no eligible
// selected locations are emitted with zero assignments, never skipped.
func BuildWeek(req WeekRequest) *WeekSchedule {
	selected := make(map[string]bool, len(req.Selected))
	for _, id := range req.Selected {
		selected[id] = true
	}

	defaultLabels := req.TimeLabels
	if len(defaultLabels) == 0 {
		defaultLabels = model.DefaultTimeLabels
	}

	start := truncateToDay(req.Start)

	week := &WeekSchedule{
		ID:    uuid.New().String(),
		Start: start,
		Days:  make([]DaySchedule, 0, WeekSpanDays),
	}

	for i := 0; i < WeekSpanDays; i++ {
		date := start.AddDate(0, 0, i)

		var override DayOverride
		if req.Overrides != nil {
			override, _ = req.Overrides.Get(date)
		}

		labels := defaultLabels
		if len(override.TimeLabels) > 0 {
			labels = override.TimeLabels
		}

		day := DaySchedule{
			Date:        date,
			DayName:     date.Weekday().String(),
			PlaceName:   override.PlaceName,
			ContactName: override.ContactName,
			Note:        override.Note,
		}

		// Exclusive mode consumes the roster across this day's
		// location loop; the cursor resets each day since exclusivity
		// only guards against simultaneous double-booking.
		cursor := 0

		for _, loc := range req.Locations {
			if !selected[loc.ID] || !loc.MeetsOn(date.Weekday()) {
				continue
			}
			// A chosen location narrows the day to that single
			// location
			if override.LocationID != "" && loc.ID != override.LocationID {
				continue
			}

			roster := req.Roster
			if req.Exclusive {
				if cursor > len(req.Roster) {
					cursor = len(req.Roster)
				}
				roster = req.Roster[cursor:]
			}

			pool := participantPool(roster, loc.Capacity)
			cursor += len(pool)

			day.Assignments = append(day.Assignments, LocationAssignment{
				LocationID:   loc.ID,
				LocationName: loc.Name,
				Capacity:     loc.Capacity,
				Participants: pool,
				Slots:        PairSlots(roster, loc.Capacity, labels),
			})
		}

		week.Days = append(week.Days, day)
	}

	return week
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
