package scheduler

import "github.com/SojoC/nexo-ppeam/pkg/core/model"

// PairSlots converts an ordered roster into an ordered sequence of two-person
// slots for a single location and day.
//
// The first min(len(people), capacity) people form the participant pool, in
// roster order. The pool is walked two at a time: slot i holds pool[2i] and
// pool[2i+1], with the second occupant left nil when the pool has odd length.
// The time-label list is the hard upper bound on slots produced from pairs;
// pairs beyond len(timeLabels) are dropped. If fewer pairs exist than labels,
// empty slots are appended for the remaining labels so the output length
// always equals len(timeLabels).
//
// A negative capacity is clamped to zero rather than treated as an error.
func PairSlots(people []model.Person, capacity int, timeLabels []string) []Slot {
	if capacity < 0 {
		capacity = 0
	}

	pool := people
	if len(pool) > capacity {
		pool = pool[:capacity]
	}

	slots := make([]Slot, 0, len(timeLabels))

	// Pair the pool in order, one slot per label
	for i := 0; i < len(pool) && len(slots) < len(timeLabels); i += 2 {
		slot := Slot{
			TimeLabel:    timeLabels[len(slots)],
			ParticipantA: &pool[i],
		}
		if i+1 < len(pool) {
			slot.ParticipantB = &pool[i+1]
		}
		slots = append(slots, slot)
	}

	// Pad with empty slots for the unused labels
	for len(slots) < len(timeLabels) {
		slots = append(slots, Slot{TimeLabel: timeLabels[len(slots)]})
	}

	return slots
}

// participantPool returns the roster prefix that PairSlots would draw for the
// given capacity
func participantPool(people []model.Person, capacity int) []model.Person {
	if capacity < 0 {
		capacity = 0
	}
	if len(people) > capacity {
		return people[:capacity]
	}
	return people
}
