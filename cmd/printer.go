package main

import (
	"event-calendar/internal"
	"event-calendar/render"
	"fmt"
	"io"

	"github.com/gookit/color"
)

type printer struct {
	w       io.Writer
	colours bool
}

func newPrinter(w io.Writer, colours bool) printer {
	return printer{w: w, colours: colours}
}

func (p printer) paint(style color.Style, text string) string {
	if !p.colours {
		return text
	}
	return style.Render(text)
}

func (p printer) outcome(out internal.Outcome, counter render.EventCounter) {
	status := p.paint(color.New(color.FgGreen), "ok")
	switch {
	case out.Err != nil:
		status = p.paint(color.New(color.FgRed, color.OpBold), "error: "+out.Err.Error())
	case !out.OK:
		status = p.paint(color.New(color.FgYellow), "refused")
	}
	subject := out.Title
	if out.Person != "" && out.Title != "" {
		subject = out.Person + " -> " + out.Title
	} else if out.Person != "" {
		subject = out.Person
	}
	fmt.Fprintf(p.w, "line %-4d %-13s %-40s %s\n", out.Line, out.Action, subject, status)

	if !out.OK {
		return
	}
	switch out.Action {
	case internal.ParticipantsAction:
		render.ParticipantsTable(p.w, out.People, counter)
	case internal.EventsAction:
		render.EventsTable(p.w, out.Events)
	}
}
