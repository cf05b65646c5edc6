package services

import (
	"event-calendar/domain"
	"event-calendar/errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CreateEventRequest gathers the caller-supplied fields of CreateEvent.
// Rules depending on the clock or the stored events are checked by the Controller.
type CreateEventRequest struct {
	Invitor         *domain.Person `validate:"required"`
	Title           string         `validate:"required"`
	At              time.Time
	MaxParticipants int `validate:"gte=0"`
}

func ValidateCreateEvent(req CreateEventRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidEvent, err)
	}
	return nil
}
