// Package render turns calendar snapshots into tables and JSON for the command line.
// It only reads what the controller returns and never mutates events.
package render

import (
	"event-calendar/domain"
	"fmt"
	"io"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

const dateLayout = "2006-01-02 15:04"

// EventCounter is the part of the controller needed to show how busy a person is.
type EventCounter interface {
	CountEventsForPerson(person *domain.Person) int
}

// EventView is the JSON shape of an event.
type EventView struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Invitor         string   `json:"invitor"`
	At              string   `json:"at"`
	Kind            string   `json:"kind"`
	MaxParticipants int      `json:"max_participants,omitempty"`
	Participants    []string `json:"participants"`
}

func ToEventView(ev *domain.Event) EventView {
	return EventView{
		ID:              ev.ID().String(),
		Title:           ev.Title(),
		Invitor:         ev.Invitor().String(),
		At:              ev.EventTime().UTC().Format(time.RFC3339),
		Kind:            ev.Kind().String(),
		MaxParticipants: ev.MaxParticipants(),
		Participants:    lo.Map(ev.GetParticipants(), func(p domain.Person, _ int) string { return p.Name }),
	}
}

func JSON(w io.Writer, events []*domain.Event) error {
	views := lo.Map(events, func(ev *domain.Event, _ int) EventView { return ToEventView(ev) })
	data, err := jsoniter.ConfigFastest.Marshal(views)
	if err != nil {
		return fmt.Errorf("marshal events: %w", err)
	}
	if _, err = w.Write(append(data, '\n')); err != nil {
		return err
	}
	return nil
}

func EventsTable(w io.Writer, events []*domain.Event) {
	table := newTable(w)
	table.SetHeader([]string{"Title", "Invitor", "When", "Kind", "Participants", "Free"})
	for _, ev := range events {
		table.Append([]string{
			ev.Title(),
			ev.Invitor().String(),
			ev.EventTime().Format(dateLayout),
			ev.Kind().String(),
			participantsCell(ev),
			freeCell(ev),
		})
	}
	table.Render()
}

// ParticipantsTable lists people with the number of events each one attends.
func ParticipantsTable(w io.Writer, people []domain.Person, counter EventCounter) {
	table := newTable(w)
	table.SetHeader([]string{"Name", "Events"})
	for _, p := range people {
		table.Append([]string{p.Name, strconv.Itoa(counter.CountEventsForPerson(&p))})
	}
	table.Render()
}

func participantsCell(ev *domain.Event) string {
	if ev.IsLimited() {
		return fmt.Sprintf("%d/%d", ev.ParticipantsCount(), ev.MaxParticipants())
	}
	return strconv.Itoa(ev.ParticipantsCount())
}

func freeCell(ev *domain.Event) string {
	if free := ev.FreePlaces(); free >= 0 {
		return strconv.Itoa(free)
	}
	return "-"
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
