package services

import (
	"event-calendar/contract"
	"event-calendar/domain"
	"event-calendar/errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/samber/lo"
)

// Controller is the single authority over the event collection.
// It validates creations, routes registrations to the stored events and answers queries.
// A Controller is not safe for concurrent use: callers must serialize access.
type Controller struct {
	log              *slog.Logger
	clock            contract.Clock
	capacity         domain.CapacityPolicy
	participantOrder domain.QueryOrder
	eventOrder       domain.QueryOrder
	events           []*domain.Event
}

var _ contract.IController = (*Controller)(nil)

type Option func(*Controller)

// WithCapacityPolicy replaces the default EnforceCapacity policy.
func WithCapacityPolicy(policy domain.CapacityPolicy) Option {
	return func(c *Controller) {
		if policy != nil {
			c.capacity = policy
		}
	}
}

func WithParticipantOrder(order domain.QueryOrder) Option {
	return func(c *Controller) { c.participantOrder = order }
}

func WithEventOrder(order domain.QueryOrder) Option {
	return func(c *Controller) { c.eventOrder = order }
}

func NewController(log *slog.Logger, clock contract.Clock, opts ...Option) *Controller {
	if log == nil {
		log = slog.Default()
	}
	if clock == nil {
		clock = contract.ClockFunc(time.Now)
	}
	c := &Controller{
		log:              log,
		clock:            clock,
		capacity:         domain.EnforceCapacity,
		participantOrder: domain.SortedOrder,
		eventOrder:       domain.SortedOrder,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateEvent stores a new event for the invitor.
// The title must be unique and the date strictly in the future.
// maxParticipants == 0 creates an unlimited event, a positive value a limited one.
// Any rule violation is reported by returning false.
func (c *Controller) CreateEvent(invitor *domain.Person, title string, at time.Time, maxParticipants int) bool {
	req := CreateEventRequest{
		Invitor:         invitor,
		Title:           title,
		At:              at,
		MaxParticipants: maxParticipants,
	}
	if err := ValidateCreateEvent(req); err != nil {
		c.log.Debug("Event rejected", "title", title, "error", err)
		return false
	}
	if now := c.clock.Now(); !at.After(now) {
		c.log.Debug("Event rejected, date is not in the future", "title", title, "at", at, "now", now)
		return false
	}
	if _, exists := c.GetEvent(title); exists {
		c.log.Debug("Event rejected, title already used", "title", title)
		return false
	}

	var ev *domain.Event
	switch maxParticipants {
	case 0:
		ev = domain.NewEvent(invitor, title, at)
	default:
		ev = domain.NewLimitedEvent(invitor, title, at, maxParticipants)
	}
	c.events = append(c.events, ev)
	c.log.Info("Event created",
		"id", ev.ID(),
		"title", title,
		"invitor", invitor.Name,
		"kind", ev.Kind(),
		"max", maxParticipants)
	return true
}

// GetEvent looks the title up among the stored events.
func (c *Controller) GetEvent(title string) (*domain.Event, bool) {
	if title == "" {
		return nil, false
	}
	return lo.Find(c.events, func(ev *domain.Event) bool {
		return ev.Title() == title
	})
}

// RegisterPersonForEvent adds person to the stored event carrying ev's title.
// It returns false for nil arguments, an unknown event, a full event (per the capacity policy)
// or a person already registered.
func (c *Controller) RegisterPersonForEvent(person *domain.Person, ev *domain.Event) bool {
	if person == nil || ev == nil {
		return false
	}
	current, ok := c.GetEvent(ev.Title())
	if !ok {
		c.log.Debug("Registration rejected, unknown event", "title", ev.Title(), "person", person.Name)
		return false
	}
	if !c.capacity(current) {
		c.log.Debug("Registration rejected, event is full",
			"title", current.Title(),
			"person", person.Name,
			"max", current.MaxParticipants())
		return false
	}
	if !current.AddParticipant(person) {
		c.log.Debug("Registration rejected, already registered", "title", current.Title(), "person", person.Name)
		return false
	}
	c.log.Info("Person registered", "title", current.Title(), "person", person.Name)
	return true
}

// UnregisterPersonForEvent removes person from the stored event carrying ev's title.
// Unlike the other operations, nil arguments are a programming error and reported
// as an error wrapping errors.ErrInvalidArgument.
func (c *Controller) UnregisterPersonForEvent(person *domain.Person, ev *domain.Event) (bool, error) {
	if person == nil {
		return false, fmt.Errorf("%w: person is nil", errors.ErrInvalidArgument)
	}
	if ev == nil {
		return false, fmt.Errorf("%w: event is nil", errors.ErrInvalidArgument)
	}
	current, ok := c.GetEvent(ev.Title())
	if !ok {
		return false, nil
	}
	removed := current.RemoveParticipant(person)
	if removed {
		c.log.Info("Person unregistered", "title", current.Title(), "person", person.Name)
	}
	return removed, nil
}

// GetParticipatorsForEvent returns a snapshot of the participants of the stored event.
// In sorted order, people attending more events come first, ties broken by name.
func (c *Controller) GetParticipatorsForEvent(ev *domain.Event) ([]domain.Person, bool) {
	if ev == nil {
		return nil, false
	}
	current, ok := c.GetEvent(ev.Title())
	if !ok {
		return nil, false
	}
	participants := current.GetParticipants()
	if c.participantOrder == domain.SortedOrder {
		domain.SortParticipants(participants, func(p domain.Person) int {
			return c.CountEventsForPerson(&p)
		})
	}
	return participants, true
}

// GetEventsForPerson returns the events person is registered for, sorted by date
// unless the controller keeps insertion order. A nil person yields (nil, false).
func (c *Controller) GetEventsForPerson(person *domain.Person) ([]*domain.Event, bool) {
	if person == nil {
		return nil, false
	}
	events := lo.Filter(c.events, func(ev *domain.Event, _ int) bool {
		return ev.HasParticipant(person)
	})
	if c.eventOrder == domain.SortedOrder {
		domain.SortEvents(events)
	}
	return events, true
}

// CountEventsForPerson returns 0 for a nil person.
func (c *Controller) CountEventsForPerson(person *domain.Person) int {
	if person == nil {
		return 0
	}
	return lo.CountBy(c.events, func(ev *domain.Event) bool {
		return ev.HasParticipant(person)
	})
}

func (c *Controller) EventsCount() int {
	return len(c.events)
}

// Events returns a snapshot of every stored event.
func (c *Controller) Events() []*domain.Event {
	events := slices.Clone(c.events)
	if c.eventOrder == domain.SortedOrder {
		domain.SortEvents(events)
	}
	return events
}
