package domain

import (
	"cmp"
	"slices"
)

// QueryOrder selects how query results are ordered.
type QueryOrder int

const (
	SortedOrder QueryOrder = iota
	InsertionOrder
)

func QueryOrderFor(sorted bool) QueryOrder {
	if sorted {
		return SortedOrder
	}
	return InsertionOrder
}

// SortParticipants orders people by number of events descending, then by name ascending.
// eventCount is evaluated once per person.
func SortParticipants(people []Person, eventCount func(Person) int) {
	counts := make(map[Person]int, len(people))
	for _, p := range people {
		counts[p] = eventCount(p)
	}
	slices.SortStableFunc(people, func(a, b Person) int {
		if c := cmp.Compare(counts[b], counts[a]); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
}

// SortEvents orders events by date ascending, then by title.
func SortEvents(events []*Event) {
	slices.SortStableFunc(events, func(a, b *Event) int {
		if c := a.eventTime.Compare(b.eventTime); c != 0 {
			return c
		}
		return cmp.Compare(a.title, b.title)
	})
}
