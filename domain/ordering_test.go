package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSortParticipants_By_EventCount_Then_Name(t *testing.T) {
	req := require.New(t)
	counts := map[string]int{"Dan": 1, "Bob": 3, "Alice": 1, "Clara": 3, "Eve": 0}
	people := []Person{{"Dan"}, {"Bob"}, {"Eve"}, {"Alice"}, {"Clara"}}

	SortParticipants(people, func(p Person) int { return counts[p.Name] })

	req.Equal([]Person{{"Bob"}, {"Clara"}, {"Alice"}, {"Dan"}, {"Eve"}}, people)
}

func TestSortParticipants_Evaluates_Count_Once_Per_Person(t *testing.T) {
	req := require.New(t)
	calls := 0
	people := []Person{{"C"}, {"B"}, {"A"}}

	SortParticipants(people, func(Person) int {
		calls++
		return 1
	})

	req.Equal(3, calls)
	req.Equal([]Person{{"A"}, {"B"}, {"C"}}, people)
}

func TestSortEvents_By_Date_Then_Title(t *testing.T) {
	req := require.New(t)
	now := time.Now()
	late := NewEvent(nil, "Late", now.Add(72*time.Hour))
	early := NewEvent(nil, "Early", now.Add(time.Hour))
	sameB := NewEvent(nil, "B", now.Add(24*time.Hour))
	sameA := NewEvent(nil, "A", now.Add(24*time.Hour))
	events := []*Event{late, sameB, early, sameA}

	SortEvents(events)

	req.Equal([]*Event{early, sameA, sameB, late}, events)
}

func TestQueryOrderFor(t *testing.T) {
	req := require.New(t)
	req.Equal(SortedOrder, QueryOrderFor(true))
	req.Equal(InsertionOrder, QueryOrderFor(false))
}

func TestCapacityPolicy(t *testing.T) {
	req := require.New(t)
	full := NewLimitedEvent(nil, "Full", time.Now().Add(time.Hour), 1)
	full.AddParticipant(NewPerson("Bob"))
	open := NewEvent(nil, "Open", time.Now().Add(time.Hour))

	req.False(EnforceCapacity(full))
	req.True(EnforceCapacity(open))
	req.True(IgnoreCapacity(full))

	req.False(CapacityPolicyFor(true)(full))
	req.True(CapacityPolicyFor(false)(full))
}
