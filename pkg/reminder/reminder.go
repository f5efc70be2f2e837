// Package reminder derives the upcoming events shown at startup.
package reminder

import (
	"fmt"
	"time"

	"tableflip.dev/matchday/pkg/apperr"
	"tableflip.dev/matchday/pkg/event"
	"tableflip.dev/matchday/pkg/store"
)

// Lister is the read side of the event store.
type Lister interface {
	List(f store.Filter) []event.Event
}

// Upcoming returns the events dated from now's day through lookaheadDays
// days later, inclusive, ordered by date then insertion order. It only reads
// from src.
func Upcoming(src Lister, now time.Time, lookaheadDays int) ([]event.Event, error) {
	if lookaheadDays < 0 {
		return nil, apperr.Validation("lookahead", "must be zero or more days, got %d", lookaheadDays)
	}
	today := event.DateOf(now)
	return src.List(store.Filter{
		Range: &store.DateRange{From: today, To: today.AddDays(lookaheadDays)},
	}), nil
}

// When describes how far away e is from now: "today", "tomorrow" or
// "in N days (DD.MM.)".
func When(e event.Event, now time.Time) string {
	days := event.DateOf(now).DaysUntil(e.Date)
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days < 0:
		return fmt.Sprintf("%d days ago", -days)
	default:
		return fmt.Sprintf("in %d days (%02d.%02d.)", days, e.Date.Day, int(e.Date.Month))
	}
}
