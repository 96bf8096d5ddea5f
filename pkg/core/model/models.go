package model

import "time"

// Person represents a participant eligible for slot assignment.
// People are sourced read-only from a roster provider; the scheduler
// never mutates them. Contact fields are display-only and carry no
// scheduling meaning.
type Person struct {
	ID           string // Empty for ad hoc entries
	Name         string // Canonical display name, resolved at the roster boundary
	Phone        string
	Congregation string
}

// Location represents a fixed, statically configured meeting place
type Location struct {
	ID       string
	Name     string
	Capacity int            // Maximum simultaneous participants drawn for a day
	Days     []time.Weekday // Weekdays this location is eligible for
}

// MeetsOn returns true if the location is eligible for the given weekday
func (l Location) MeetsOn(day time.Weekday) bool {
	for _, d := range l.Days {
		if d == day {
			return true
		}
	}
	return false
}

// DefaultTimeLabels is the canonical ordered list of slot times used when a
// day carries no time-label override
var DefaultTimeLabels = []string{
	"08:00",
	"09:00",
	"10:00",
	"11:00",
	"15:00",
	"16:00",
}
