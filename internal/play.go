package internal

import (
	"event-calendar/contract"
	"event-calendar/domain"
)

// Outcome is the controller's answer to one instruction.
// Err is only set by an unregistration the controller refuses as invalid.
type Outcome struct {
	Instruction
	OK     bool
	Err    error
	Events []*domain.Event
	People []domain.Person
}

// Play runs the instructions in order against the controller.
// Events are looked up by title first; an unknown title is passed on as nil.
func Play(controller contract.IController, script []Instruction) []Outcome {
	outcomes := make([]Outcome, 0, len(script))
	for _, in := range script {
		out := Outcome{Instruction: in}
		ev, _ := controller.GetEvent(in.Title)
		switch in.Action {
		case CreateAction:
			out.OK = controller.CreateEvent(domain.NewPerson(in.Person), in.Title, in.At, in.MaxParticipants)
		case RegisterAction:
			out.OK = controller.RegisterPersonForEvent(domain.NewPerson(in.Person), ev)
		case UnregisterAction:
			out.OK, out.Err = controller.UnregisterPersonForEvent(domain.NewPerson(in.Person), ev)
		case ParticipantsAction:
			out.People, out.OK = controller.GetParticipatorsForEvent(ev)
		case EventsAction:
			out.Events, out.OK = controller.GetEventsForPerson(domain.NewPerson(in.Person))
		}
		outcomes = append(outcomes, out)
	}
	return outcomes
}
