package reminder

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"tableflip.dev/matchday/pkg/apperr"
	"tableflip.dev/matchday/pkg/event"
	"tableflip.dev/matchday/pkg/store"
)

func seeded(t *testing.T, dates ...string) *store.Store {
	t.Helper()
	s, err := store.Open(store.NewConfig(t.TempDir(), ""))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	for _, d := range dates {
		if _, err := s.Add(event.Draft{Title: d, Date: event.MustDate(d)}); err != nil {
			t.Fatalf("add %s: %v", d, err)
		}
	}
	return s
}

func at(date string) time.Time {
	return event.MustDate(date).Time().Add(15 * time.Hour)
}

func dates(list []event.Event) []string {
	out := []string{}
	for _, e := range list {
		out = append(out, e.Date.String())
	}
	return out
}

func TestUpcomingWindow(t *testing.T) {
	s := seeded(t, "2024-05-09", "2024-04-30", "2024-05-08", "2024-05-01", "2024-05-04")

	got, err := Upcoming(s, at("2024-05-01"), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"2024-05-01", "2024-05-04", "2024-05-08"}
	if !reflect.DeepEqual(dates(got), want) {
		t.Fatalf("expected %v, got %v", want, dates(got))
	}
}

func TestUpcomingTodayOnly(t *testing.T) {
	s := seeded(t, "2024-05-01", "2024-05-02", "2024-04-30", "2024-05-01")

	got, err := Upcoming(s, at("2024-05-01"), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"2024-05-01", "2024-05-01"}; !reflect.DeepEqual(dates(got), want) {
		t.Fatalf("expected %v, got %v", want, dates(got))
	}
}

func TestUpcomingNegativeLookahead(t *testing.T) {
	s := seeded(t)
	if _, err := Upcoming(s, time.Now(), -1); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpcomingDoesNotMutate(t *testing.T) {
	s := seeded(t, "2024-05-01")
	before := s.List(store.Filter{})
	if _, err := Upcoming(s, at("2024-05-01"), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after := s.List(store.Filter{}); !reflect.DeepEqual(before, after) {
		t.Fatalf("upcoming changed the store")
	}
}

func TestWhen(t *testing.T) {
	now := at("2024-05-01")
	tests := map[string]string{
		"2024-05-01": "today",
		"2024-05-02": "tomorrow",
		"2024-05-05": "in 4 days (05.05.)",
	}
	for date, want := range tests {
		if got := When(event.Event{Date: event.MustDate(date)}, now); got != want {
			t.Errorf("When(%s) = %q, want %q", date, got, want)
		}
	}
}
