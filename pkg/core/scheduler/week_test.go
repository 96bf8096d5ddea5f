package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SojoC/nexo-ppeam/pkg/core/model"
)

// monday is a known Monday anchor used across the week tests
var monday = time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

func allWeek() []time.Weekday {
	return []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	}
}

func testLocations() []model.Location {
	return []model.Location{
		{ID: "plaza", Name: "Plaza Central", Capacity: 4, Days: allWeek()},
		{ID: "mercado", Name: "Mercado Municipal", Capacity: 2, Days: []time.Weekday{time.Saturday, time.Sunday}},
		{ID: "terminal", Name: "Terminal", Capacity: 6, Days: []time.Weekday{time.Monday, time.Wednesday}},
	}
}

func TestBuildWeek_SevenDaysFromAnchor(t *testing.T) {
	week := BuildWeek(WeekRequest{
		Start:     monday,
		Locations: testLocations(),
		Selected:  []string{"plaza"},
		Roster:    makeRoster(4),
	})

	require.Len(t, week.Days, 7)
	assert.NotEmpty(t, week.ID)
	assert.Equal(t, monday, week.Start)

	for i, day := range week.Days {
		assert.Equal(t, monday.AddDate(0, 0, i), day.Date)
		assert.Equal(t, day.Date.Weekday().String(), day.DayName)
	}
}

func TestBuildWeek_WeekendOnlyLocationNeverOnWeekdays(t *testing.T) {
	week := BuildWeek(WeekRequest{
		Start:     monday,
		Locations: testLocations(),
		Selected:  []string{"mercado"},
		Roster:    makeRoster(4),
	})

	for _, day := range week.Days {
		weekday := day.Date.Weekday()
		if weekday == time.Saturday || weekday == time.Sunday {
			require.Len(t, day.Assignments, 1, "%s", day.DayName)
			assert.Equal(t, "mercado", day.Assignments[0].LocationID)
		} else {
			assert.Empty(t, day.Assignments, "%s", day.DayName)
		}
	}
}

func TestBuildWeek_EmptySelection(t *testing.T) {
	week := BuildWeek(WeekRequest{
		Start:     monday,
		Locations: testLocations(),
		Roster:    makeRoster(10),
	})

	require.Len(t, week.Days, 7)
	for _, day := range week.Days {
		assert.Empty(t, day.Assignments)
	}
}

func TestBuildWeek_LocationDeclarationOrderPreserved(t *testing.T) {
	week := BuildWeek(WeekRequest{
		Start:     monday,
		Locations: testLocations(),
		// Selection order does not matter; declaration order does
		Selected: []string{"terminal", "plaza"},
		Roster:   makeRoster(4),
	})

	mondayDay := week.Days[0]
	require.Len(t, mondayDay.Assignments, 2)
	assert.Equal(t, "plaza", mondayDay.Assignments[0].LocationID)
	assert.Equal(t, "terminal", mondayDay.Assignments[1].LocationID)
}

func TestBuildWeek_SharedRosterPrefixAcrossLocations(t *testing.T) {
	// The baseline semantics reuse the same roster prefix for every
	// location: the first people can appear in two simultaneous places
	week := BuildWeek(WeekRequest{
		Start:     monday,
		Locations: testLocations(),
		Selected:  []string{"plaza", "terminal"},
		Roster:    makeRoster(8),
	})

	mondayDay := week.Days[0]
	require.Len(t, mondayDay.Assignments, 2)

	plaza, terminal := mondayDay.Assignments[0], mondayDay.Assignments[1]
	assert.Equal(t, "p0", plaza.Participants[0].ID)
	assert.Equal(t, "p0", terminal.Participants[0].ID)
	assert.Len(t, plaza.Participants, 4)
	assert.Len(t, terminal.Participants, 6)
}

func TestBuildWeek_ExclusiveModeConsumesRoster(t *testing.T) {
	week := BuildWeek(WeekRequest{
		Start:     monday,
		Locations: testLocations(),
		Selected:  []string{"plaza", "terminal"},
		Roster:    makeRoster(8),
		Exclusive: true,
	})

	mondayDay := week.Days[0]
	require.Len(t, mondayDay.Assignments, 2)

	plaza, terminal := mondayDay.Assignments[0], mondayDay.Assignments[1]
	require.Len(t, plaza.Participants, 4)
	require.Len(t, terminal.Participants, 4)
	assert.Equal(t, "p0", plaza.Participants[0].ID)
	assert.Equal(t, "p4", terminal.Participants[0].ID)

	// The cursor resets per day: Tuesday's plaza assignment starts from
	// the front again
	tuesday := week.Days[1]
	require.Len(t, tuesday.Assignments, 1)
	assert.Equal(t, "p0", tuesday.Assignments[0].Participants[0].ID)
}

func TestBuildWeek_Determinism(t *testing.T) {
	req := WeekRequest{
		Start:     monday,
		Locations: testLocations(),
		Selected:  []string{"plaza", "mercado", "terminal"},
		Roster:    makeRoster(11),
	}

	a := BuildWeek(req)
	b := BuildWeek(req)

	// IDs differ per build; everything structural must match
	a.ID, b.ID = "", ""
	assert.Equal(t, a, b)
}

func TestBuildWeek_OverrideTimeLabels(t *testing.T) {
	overrides := NewOverrideStore()
	overrides.Set(monday, DayOverride{TimeLabels: []string{"07:00", "08:00"}})

	week := BuildWeek(WeekRequest{
		Start:     monday,
		Locations: testLocations(),
		Selected:  []string{"plaza"},
		Roster:    makeRoster(4),
		Overrides: overrides,
	})

	mondaySlots := week.Days[0].Assignments[0].Slots
	require.Len(t, mondaySlots, 2)
	assert.Equal(t, "07:00", mondaySlots[0].TimeLabel)

	// Other days keep the canonical defaults
	tuesdaySlots := week.Days[1].Assignments[0].Slots
	assert.Len(t, tuesdaySlots, len(model.DefaultTimeLabels))
}

func TestBuildWeek_OverrideChosenLocationNarrowsDay(t *testing.T) {
	overrides := NewOverrideStore()
	overrides.Set(monday, DayOverride{LocationID: "terminal"})

	week := BuildWeek(WeekRequest{
		Start:     monday,
		Locations: testLocations(),
		Selected:  []string{"plaza", "terminal"},
		Roster:    makeRoster(4),
		Overrides: overrides,
	})

	mondayDay := week.Days[0]
	require.Len(t, mondayDay.Assignments, 1)
	assert.Equal(t, "terminal", mondayDay.Assignments[0].LocationID)

	// Days without the override are unaffected
	wednesday := week.Days[2]
	assert.Len(t, wednesday.Assignments, 2)
}

func TestBuildWeek_OverrideChosenLocationIneligibleThatDay(t *testing.T) {
	// mercado only meets on weekends; pinning it on a Monday leaves the
	// day with no assignments rather than forcing an ineligible location
	overrides := NewOverrideStore()
	overrides.Set(monday, DayOverride{LocationID: "mercado"})

	week := BuildWeek(WeekRequest{
		Start:     monday,
		Locations: testLocations(),
		Selected:  []string{"plaza", "mercado"},
		Roster:    makeRoster(4),
		Overrides: overrides,
	})

	assert.Empty(t, week.Days[0].Assignments)

	// Saturday honors the selection as usual
	saturday := week.Days[5]
	require.Len(t, saturday.Assignments, 2)
}

func TestBuildWeek_OverrideChosenLocationOutsideSelection(t *testing.T) {
	overrides := NewOverrideStore()
	overrides.Set(monday, DayOverride{LocationID: "terminal"})

	week := BuildWeek(WeekRequest{
		Start:     monday,
		Locations: testLocations(),
		Selected:  []string{"plaza"},
		Roster:    makeRoster(4),
		Overrides: overrides,
	})

	assert.Empty(t, week.Days[0].Assignments)
	assert.Len(t, week.Days[1].Assignments, 1)
}

func TestBuildWeek_OverrideDetailsCopiedToDay(t *testing.T) {
	overrides := NewOverrideStore()
	overrides.Set(monday, DayOverride{
		PlaceName:   "Frente a la panadería",
		ContactName: "Hno. Pérez",
		Note:        "llevar carrito",
	})

	week := BuildWeek(WeekRequest{
		Start:     monday,
		Locations: testLocations(),
		Selected:  []string{"plaza"},
		Roster:    makeRoster(2),
		Overrides: overrides,
	})

	day := week.Days[0]
	assert.Equal(t, "Frente a la panadería", day.PlaceName)
	assert.Equal(t, "Hno. Pérez", day.ContactName)
	assert.Equal(t, "llevar carrito", day.Note)
	assert.Empty(t, week.Days[1].Note)
}

func TestBuildWeek_NonMondayAnchorAccepted(t *testing.T) {
	thursday := monday.AddDate(0, 0, 3)

	week := BuildWeek(WeekRequest{
		Start:     thursday,
		Locations: testLocations(),
		Selected:  []string{"plaza"},
		Roster:    makeRoster(2),
	})

	require.Len(t, week.Days, 7)
	assert.Equal(t, "Thursday", week.Days[0].DayName)
}
