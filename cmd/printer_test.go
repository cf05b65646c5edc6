package main

import (
	"bytes"
	"event-calendar/domain"
	"event-calendar/errors"
	"event-calendar/internal"
	"event-calendar/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPrinter_Outcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockController := mocks.NewMockIController(ctrl)

	tests := []struct {
		name     string
		outcome  internal.Outcome
		expected []string
	}{
		{
			name: "accepted registration",
			outcome: internal.Outcome{
				Instruction: internal.Instruction{Line: 3, Action: internal.RegisterAction, Person: "Bob", Title: "Meetup"},
				OK:          true,
			},
			expected: []string{"line 3", "register", "Bob -> Meetup", "ok"},
		},
		{
			name: "refused creation",
			outcome: internal.Outcome{
				Instruction: internal.Instruction{Line: 7, Action: internal.CreateAction, Person: "Alice", Title: "Meetup"},
			},
			expected: []string{"line 7", "create", "refused"},
		},
		{
			name: "invalid unregistration",
			outcome: internal.Outcome{
				Instruction: internal.Instruction{Line: 9, Action: internal.UnregisterAction, Person: "Bob", Title: "Ghost"},
				Err:         errors.ErrInvalidArgument,
			},
			expected: []string{"line 9", "error: invalid argument"},
		},
		{
			name: "events of a person",
			outcome: internal.Outcome{
				Instruction: internal.Instruction{Line: 2, Action: internal.EventsAction, Person: "Bob"},
				OK:          true,
				Events:      []*domain.Event{domain.NewEvent(domain.NewPerson("Alice"), "Meetup", time.Now().Add(time.Hour))},
			},
			expected: []string{"events", "Bob", "TITLE", "Meetup"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			var buf bytes.Buffer

			newPrinter(&buf, false).outcome(tt.outcome, mockController)

			for _, part := range tt.expected {
				req.Contains(buf.String(), part)
			}
		})
	}
}

func TestPrinter_Participants_Uses_Counter(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockController := mocks.NewMockIController(ctrl)
	var buf bytes.Buffer

	mockController.EXPECT().CountEventsForPerson(domain.NewPerson("Clara")).Return(4).Times(1)

	newPrinter(&buf, true).outcome(internal.Outcome{
		Instruction: internal.Instruction{Line: 5, Action: internal.ParticipantsAction, Title: "Meetup"},
		OK:          true,
		People:      []domain.Person{{Name: "Clara"}},
	}, mockController)

	req.Contains(buf.String(), "Meetup")
	req.Regexp(`Clara\s+4`, buf.String())
}
