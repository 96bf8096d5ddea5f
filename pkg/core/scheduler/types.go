package scheduler

import (
	"time"

	"github.com/SojoC/nexo-ppeam/pkg/core/model"
)

// Slot is one scheduled pairing within a location assignment.
// Either occupant may be nil; a slot with no occupants is still rendered
// so the table always shows one row per time label.
type Slot struct {
	TimeLabel    string
	ParticipantA *model.Person
	ParticipantB *model.Person
}

// OccupantCount returns the number of filled positions in the slot (0, 1 or 2)
func (s Slot) OccupantCount() int {
	count := 0
	if s.ParticipantA != nil {
		count++
	}
	if s.ParticipantB != nil {
		count++
	}
	return count
}

// LocationAssignment is the materialization of one location for one day.
// Location fields are copied in at assignment time so the schedule stays
// stable even if the location table changes afterwards.
type LocationAssignment struct {
	LocationID   string
	LocationName string
	Capacity     int

	// Participants drawn for this day/location, at most Capacity people,
	// in roster order
	Participants []model.Person

	// Slots in time-label order, always padded to the label count in
	// effect for the day
	Slots []Slot
}

// DaySchedule is one calendar date within the requested range. PlaceName,
// ContactName and Note are copied from the day's override when one exists.
type DaySchedule struct {
	Date        time.Time
	DayName     string
	PlaceName   string
	ContactName string
	Note        string
	Assignments []LocationAssignment
}

// WeekSchedule is the full 7-day output of the calendar builder
type WeekSchedule struct {
	ID    string
	Start time.Time
	Days  []DaySchedule
}

// WeekRequest carries every input the calendar builder needs. The builder is
// pure given a request; callers re-run it in full on any change.
type WeekRequest struct {
	// Start is the anchor date of the 7-day window. Expected to be a
	// Monday but not enforced; any weekday anchors a valid window.
	Start time.Time

	// Locations is the full static location table, in declaration order
	Locations []model.Location

	// Selected is the set of location IDs to schedule. An empty selection
	// yields seven days with zero assignments.
	Selected []string

	// Roster is the ordered participant list shared across every
	// location and day
	Roster []model.Person

	// TimeLabels is the default ordered slot-time list; the canonical
	// six labels are used when empty
	TimeLabels []string

	// Overrides holds per-date customization; may be nil
	Overrides *OverrideStore

	// Exclusive makes each day's location loop consume the roster
	// cumulatively so nobody lands in two simultaneous locations. The
	// default (false) reuses the same roster prefix everywhere.
	Exclusive bool
}
