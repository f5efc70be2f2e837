package store

import (
	"strings"

	"tableflip.dev/matchday/pkg/event"
)

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	From event.Date
	To   event.Date
}

// Contains reports whether d lies within the range, bounds included.
func (r DateRange) Contains(d event.Date) bool {
	return !d.Before(r.From) && !d.After(r.To)
}

// Filter selects events. Every field that is set must match; the zero Filter
// matches everything.
type Filter struct {
	// Date matches events on exactly this day.
	Date *event.Date
	// Type matches the event type exactly.
	Type string
	// Tags must all be carried by the event.
	Tags []string
	// Range matches events dated within the inclusive range.
	Range *DateRange
	// Text matches a case-insensitive substring of title or details.
	Text string
}

// Match reports whether e passes every set field of f.
func (f Filter) Match(e event.Event) bool {
	if f.Date != nil && e.Date != *f.Date {
		return false
	}
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	if len(f.Tags) > 0 && !e.HasTags(f.Tags) {
		return false
	}
	if f.Range != nil && !f.Range.Contains(e.Date) {
		return false
	}
	if f.Text != "" {
		needle := strings.ToLower(f.Text)
		if !strings.Contains(strings.ToLower(e.Title), needle) &&
			!strings.Contains(strings.ToLower(e.Details), needle) {
			return false
		}
	}
	return true
}
