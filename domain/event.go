// Package domain contains core concepts of the event calendar.
// This file defines Event, the unlimited and limited variants it carries,
// and the participant rules attached to it.
package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type EventKind int

const (
	Unlimited EventKind = iota
	Limited
)

func (k EventKind) String() string {
	switch k {
	case Limited:
		return "limited"
	default:
		return "unlimited"
	}
}

// Event is a dated gathering owned by an invitor.
// Title, invitor and time never change after creation, only the participant list does.
// A limited event carries a positive maxParticipants, an unlimited one carries 0.
type Event struct {
	id              uuid.UUID
	title           string
	invitor         *Person
	eventTime       time.Time
	kind            EventKind
	maxParticipants int
	participants    []Person
}

func NewEvent(invitor *Person, title string, at time.Time) *Event {
	return &Event{
		id:        uuid.New(),
		title:     title,
		invitor:   invitor,
		eventTime: at,
		kind:      Unlimited,
	}
}

func NewLimitedEvent(invitor *Person, title string, at time.Time, maxParticipants int) *Event {
	ev := NewEvent(invitor, title, at)
	ev.kind = Limited
	ev.maxParticipants = maxParticipants
	return ev
}

func (e *Event) ID() uuid.UUID        { return e.id }
func (e *Event) Title() string        { return e.title }
func (e *Event) Invitor() *Person     { return e.invitor }
func (e *Event) EventTime() time.Time { return e.eventTime }
func (e *Event) Kind() EventKind      { return e.kind }
func (e *Event) IsLimited() bool      { return e.kind == Limited }

// MaxParticipants returns the cap of a limited event, 0 for an unlimited one.
func (e *Event) MaxParticipants() int {
	return e.maxParticipants
}

// AddParticipant appends person unless already registered.
// The cap of a limited event is not checked here, see CapacityPolicy.
func (e *Event) AddParticipant(person *Person) bool {
	if person == nil || e.HasParticipant(person) {
		return false
	}
	e.participants = append(e.participants, *person)
	return true
}

// RemoveParticipant drops person and keeps the order of the remaining participants.
func (e *Event) RemoveParticipant(person *Person) bool {
	if person == nil {
		return false
	}
	idx := lo.IndexOf(e.participants, *person)
	if idx < 0 {
		return false
	}
	e.participants = slices.Delete(e.participants, idx, idx+1)
	return true
}

func (e *Event) HasParticipant(person *Person) bool {
	if person == nil {
		return false
	}
	return lo.Contains(e.participants, *person)
}

// GetParticipants returns a copy of the participants in registration order.
func (e *Event) GetParticipants() []Person {
	return slices.Clone(e.participants)
}

func (e *Event) ParticipantsCount() int {
	return len(e.participants)
}

// IsEventNotFull reports whether one more participant fits.
// An unlimited event is never full.
func (e *Event) IsEventNotFull() bool {
	if e.kind == Unlimited {
		return true
	}
	return e.maxParticipants > 0 && len(e.participants) < e.maxParticipants
}

// FreePlaces returns the remaining places of a limited event and -1 for an unlimited one.
func (e *Event) FreePlaces() int {
	if e.kind == Unlimited {
		return -1
	}
	return max(e.maxParticipants-len(e.participants), 0)
}
