//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"event-calendar/domain"
	"time"
)

// Clock tells the controller what "now" is when it checks that an event lies in the future.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock. ClockFunc(time.Now) is the system clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// IController is the call surface offered to collaborators (CLI, renderers, tests).
// Implementations are not safe for concurrent use.
type IController interface {
	CreateEvent(invitor *domain.Person, title string, at time.Time, maxParticipants int) bool
	GetEvent(title string) (*domain.Event, bool)
	RegisterPersonForEvent(person *domain.Person, ev *domain.Event) bool
	UnregisterPersonForEvent(person *domain.Person, ev *domain.Event) (bool, error)
	GetParticipatorsForEvent(ev *domain.Event) ([]domain.Person, bool)
	GetEventsForPerson(person *domain.Person) ([]*domain.Event, bool)
	CountEventsForPerson(person *domain.Person) int
	EventsCount() int
	Events() []*domain.Event
}
