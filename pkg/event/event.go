// Package event defines the calendar activity record kept by the store.
package event

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/matchday/pkg/apperr"
)

// Well known event types. The set is open; any non-empty string is a type.
const (
	TypeMatch    = "match"
	TypeTraining = "training"
	TypeOther    = "other"
)

// DefaultTypes lists the types offered before the user defines their own.
func DefaultTypes() []string {
	return []string{TypeMatch, TypeTraining, TypeOther}
}

// Event is one dated activity. Values handed out by the store are copies;
// mutating them does not touch stored state.
type Event struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Date    Date     `json:"date"`
	Time    string   `json:"time,omitempty"`
	Type    string   `json:"type"`
	Details string   `json:"details,omitempty"`
	Tags    []string `json:"tags"`
}

// Clone returns a deep copy of e.
func (e Event) Clone() Event {
	out := e
	out.Tags = append([]string{}, e.Tags...)
	return out
}

// HasTag reports whether tag is one of the event tags.
func (e Event) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasTags reports whether every tag in want is carried by e.
func (e Event) HasTags(want []string) bool {
	for _, w := range want {
		if !e.HasTag(w) {
			return false
		}
	}
	return true
}

// Row is the column projection used by table printers.
func (e Event) Row() (string, string, string, string, string) {
	clock := e.Time
	if clock == "" {
		clock = "--:--"
	}
	return e.Date.String(), clock, e.Title, e.Type, strings.Join(e.Tags, ", ")
}

// Start is the local wall-clock start of e. timed is false for all-day
// events, which start at midnight.
func (e Event) Start() (start time.Time, timed bool) {
	day := e.Date.Time()
	if e.Time == "" {
		return day, false
	}
	clock, err := time.Parse("15:04", e.Time)
	if err != nil {
		return day, false
	}
	return time.Date(e.Date.Year, e.Date.Month, e.Date.Day, clock.Hour(), clock.Minute(), 0, 0, time.Local), true
}

func (e Event) String() string {
	clock := e.Time
	if clock == "" {
		clock = "--:--"
	}
	return fmt.Sprintf("%s %s  %s (%s)", e.Date, clock, e.Title, e.Type)
}

// Draft carries the fields of an event that does not exist yet.
type Draft struct {
	Title   string
	Date    Date
	Time    string
	Type    string
	Details string
	Tags    []string
}

// Build normalizes the draft and returns the event with the given id.
func (d Draft) Build(id string) (Event, error) {
	e := Event{
		ID:      id,
		Title:   d.Title,
		Date:    d.Date,
		Time:    d.Time,
		Type:    d.Type,
		Details: d.Details,
		Tags:    d.Tags,
	}
	return Normalize(e)
}

// Patch names the fields to replace on an existing event. Nil fields are
// left as they are.
type Patch struct {
	Title   *string
	Date    *Date
	Time    *string
	Type    *string
	Details *string
	Tags    *[]string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Date == nil && p.Time == nil &&
		p.Type == nil && p.Details == nil && p.Tags == nil
}

// Apply returns e with the patch applied. The id is never changed.
func (p Patch) Apply(e Event) (Event, error) {
	out := e.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Date != nil {
		out.Date = *p.Date
	}
	if p.Time != nil {
		out.Time = *p.Time
	}
	if p.Type != nil {
		out.Type = *p.Type
	}
	if p.Details != nil {
		out.Details = *p.Details
	}
	if p.Tags != nil {
		out.Tags = append([]string{}, (*p.Tags)...)
	}
	return Normalize(out)
}

// Normalize trims text fields, canonicalizes the time and tag set, and
// validates the result.
func Normalize(e Event) (Event, error) {
	e.Title = strings.TrimSpace(e.Title)
	e.Type = strings.TrimSpace(e.Type)
	e.Details = strings.TrimSpace(e.Details)
	e.Tags = NormalizeTags(e.Tags)

	if e.Title == "" {
		return Event{}, apperr.Validation("title", "must not be empty")
	}
	if e.Date.IsZero() {
		return Event{}, apperr.Validation("date", "is required")
	}
	if !e.Date.Valid() {
		return Event{}, apperr.Validation("date", "%04d-%02d-%02d is not a calendar day", e.Date.Year, int(e.Date.Month), e.Date.Day)
	}
	clock, err := ParseClock(e.Time)
	if err != nil {
		return Event{}, apperr.Validation("time", "%v", err)
	}
	e.Time = clock
	if e.Type == "" {
		e.Type = TypeOther
	}
	return e, nil
}

// NormalizeTags trims tags, drops empty ones and removes duplicates while
// keeping the first occurrence.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// SplitTags parses a comma separated tag list as typed by a user.
func SplitTags(v string) []string {
	if strings.TrimSpace(v) == "" {
		return []string{}
	}
	return NormalizeTags(strings.Split(v, ","))
}
