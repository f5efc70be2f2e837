package export

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"tableflip.dev/matchday/pkg/event"
)

// ICS writes events as an iCalendar feed. Events without a time become
// all-day events; timed events carry only their start.
func ICS(w io.Writer, events []event.Event, stamp time.Time) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//tableflip.dev//matchday//EN")

	for _, e := range events {
		ve := cal.AddEvent(e.ID + "@matchday")
		ve.SetDtStampTime(stamp)
		ve.SetSummary(e.Title)
		if e.Details != "" {
			ve.SetDescription(e.Details)
		}
		start, timed := e.Start()
		if timed {
			ve.SetStartAt(start)
		} else {
			ve.SetAllDayStartAt(start)
			ve.SetAllDayEndAt(e.Date.AddDays(1).Time())
		}
		ve.AddProperty(ical.ComponentPropertyCategories, e.Type)
		for _, tag := range e.Tags {
			ve.AddProperty(ical.ComponentPropertyCategories, tag)
		}
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("export: ics: %w", err)
	}
	return nil
}
