package render

import (
	"bytes"
	"event-calendar/domain"
	"event-calendar/mocks"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var at = time.Date(2026, time.May, 2, 18, 30, 0, 0, time.UTC)

func sampleEvents() []*domain.Event {
	alice := domain.NewPerson("Alice")
	meetup := domain.NewEvent(alice, "Meetup", at)
	meetup.AddParticipant(domain.NewPerson("Bob"))
	workshop := domain.NewLimitedEvent(alice, "Workshop", at.Add(24*time.Hour), 3)
	workshop.AddParticipant(domain.NewPerson("Bob"))
	workshop.AddParticipant(domain.NewPerson("Clara"))
	return []*domain.Event{meetup, workshop}
}

func TestEventsTable(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer

	EventsTable(&buf, sampleEvents())

	out := buf.String()
	req.Contains(out, "TITLE")
	req.Contains(out, "PARTICIPANTS")
	req.Contains(out, "Meetup")
	req.Contains(out, "2026-05-02 18:30")
	req.Contains(out, "unlimited")
	req.Contains(out, "2/3")
	req.Contains(out, "Workshop")
}

func TestParticipantsTable(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockController := mocks.NewMockIController(ctrl)
	var buf bytes.Buffer

	// Given Bob attends 2 events and Clara 1
	mockController.EXPECT().CountEventsForPerson(domain.NewPerson("Bob")).Return(2).Times(1)
	mockController.EXPECT().CountEventsForPerson(domain.NewPerson("Clara")).Return(1).Times(1)

	ParticipantsTable(&buf, []domain.Person{{Name: "Bob"}, {Name: "Clara"}}, mockController)

	out := buf.String()
	req.Contains(out, "NAME")
	req.Contains(out, "EVENTS")
	req.Regexp(`Bob\s+2`, out)
	req.Regexp(`Clara\s+1`, out)
}

func TestJSON(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	events := sampleEvents()

	req.NoError(JSON(&buf, events))

	var views []EventView
	req.NoError(jsoniter.ConfigFastest.Unmarshal(buf.Bytes(), &views))
	req.Len(views, 2)

	req.Equal(events[0].ID().String(), views[0].ID)
	req.Equal("Meetup", views[0].Title)
	req.Equal("Alice", views[0].Invitor)
	req.Equal("2026-05-02T18:30:00Z", views[0].At)
	req.Equal("unlimited", views[0].Kind)
	req.Zero(views[0].MaxParticipants)
	req.Equal([]string{"Bob"}, views[0].Participants)

	req.Equal("limited", views[1].Kind)
	req.Equal(3, views[1].MaxParticipants)
	req.Equal([]string{"Bob", "Clara"}, views[1].Participants)
}

func TestJSON_Empty(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer

	req.NoError(JSON(&buf, nil))

	req.Equal("[]\n", buf.String())
}
