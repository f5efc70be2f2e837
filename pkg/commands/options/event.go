package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/matchday/pkg/apperr"
	"tableflip.dev/matchday/pkg/event"
	"tableflip.dev/matchday/pkg/timeutil"
)

// EventOptions carries the event fields accepted by add and edit.
type EventOptions struct {
	Title   string
	On      string
	Time    string
	Type    string
	Details string
	Tags    string
}

func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVar(&o.On, "on", "",
		`Day of the event, example: --on=2024-05-18, --on=tomorrow or --on=+3.`)
	cmd.Flags().StringVar(&o.Time, "at", "",
		`Start time, example: --at=18:30.`)
	cmd.Flags().StringVarP(&o.Type, "type", "t", "",
		`Event type, example: match, training or any other word.`)
	cmd.Flags().StringVarP(&o.Details, "details", "d", "",
		"Free text details.")
	cmd.Flags().StringVar(&o.Tags, "tags", "",
		`Comma separated tags, example: --tags="u15,league".`)
}

// Draft builds the fields of a new event. A missing --on is reported by
// validation as a missing date.
func (o *EventOptions) Draft(today event.Date) (event.Draft, error) {
	d := event.Draft{
		Title:   o.Title,
		Time:    o.Time,
		Type:    o.Type,
		Details: o.Details,
		Tags:    event.SplitTags(o.Tags),
	}
	if strings.TrimSpace(o.On) != "" {
		day, err := timeutil.ParseDay(o.On, today)
		if err != nil {
			return d, apperr.Validation("date", "%v", err)
		}
		d.Date = day
	}
	return d, nil
}

// Patch builds an update from the flags the user actually set. The title
// is only replaced when titleSet is true.
func (o *EventOptions) Patch(cmd *cobra.Command, titleSet bool, today event.Date) (event.Patch, error) {
	var p event.Patch
	changed := cmd.Flags().Changed
	if titleSet {
		p.Title = &o.Title
	}
	if changed("on") {
		day, err := timeutil.ParseDay(o.On, today)
		if err != nil {
			return p, apperr.Validation("date", "%v", err)
		}
		p.Date = &day
	}
	if changed("at") {
		p.Time = &o.Time
	}
	if changed("type") {
		p.Type = &o.Type
	}
	if changed("details") {
		p.Details = &o.Details
	}
	if changed("tags") {
		tags := event.SplitTags(o.Tags)
		p.Tags = &tags
	}
	return p, nil
}
