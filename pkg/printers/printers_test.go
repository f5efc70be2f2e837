package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/muesli/termenv"

	"tableflip.dev/matchday/pkg/event"
	"tableflip.dev/matchday/pkg/settings"
	"tableflip.dev/matchday/pkg/thematic"
)

func plain() (*PrettyPrint, *bytes.Buffer) {
	color.NoColor = true
	var buf bytes.Buffer
	return &PrettyPrint{Out: &buf, Width: 20, Profile: termenv.Ascii}, &buf
}

func TestCalendarMondayFirst(t *testing.T) {
	pp, buf := plain()
	events := []event.Event{
		{Title: "a", Date: event.MustDate("2024-05-03")},
		{Title: "b", Date: event.MustDate("2024-05-15")},
		{Title: "other month", Date: event.MustDate("2024-06-03")},
	}
	pp.Calendar(event.MustDate("2024-05-15"), settings.Defaults(), events...)
	lines := strings.Split(buf.String(), "\n")
	if !strings.Contains(lines[0], "May 2024") {
		t.Fatalf("missing heading: %q", lines[0])
	}
	// 1 May 2024 is a Wednesday.
	if want := "       1  2  3* 4  5 "; lines[2] != want {
		t.Fatalf("first week %q, want %q", lines[2], want)
	}
	if !strings.Contains(buf.String(), "15#") {
		t.Fatalf("selected busy day not marked:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), " 3#") || strings.Contains(buf.String(), " 3<") {
		t.Fatalf("wrong day selected")
	}
}

func TestDaysIn(t *testing.T) {
	if got := DaysIn(event.MustDate("2024-02-10")); got != 29 {
		t.Fatalf("leap February: %d", got)
	}
	if got := DaysIn(event.MustDate("2023-02-10")); got != 28 {
		t.Fatalf("February: %d", got)
	}
}

func TestEventsTable(t *testing.T) {
	pp, buf := plain()
	pp.ShowID = true
	pp.Events(event.Event{ID: "id-1", Title: "Derby", Date: event.MustDate("2024-05-03"), Type: "match", Tags: []string{"u15"}})
	out := buf.String()
	for _, want := range []string{"id-1", "2024-05-03", "--:--", "Derby", "match", "u15"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}

	pp, buf = plain()
	pp.Events()
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected none, got %q", buf.String())
	}
}

func TestUpcomingLabels(t *testing.T) {
	pp, buf := plain()
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.Local)
	pp.Upcoming(now,
		event.Event{Title: "a", Date: event.MustDate("2024-05-01"), Type: "match"},
		event.Event{Title: "b", Date: event.MustDate("2024-05-02"), Type: "match"},
	)
	if !strings.Contains(buf.String(), "today") || !strings.Contains(buf.String(), "tomorrow") {
		t.Fatalf("labels missing: %q", buf.String())
	}
}

func TestFactWraps(t *testing.T) {
	pp, buf := plain()
	pp.Fact(thematic.Item{Category: thematic.CategoryTip, Text: "Warm up properly before every single match of the season."})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "Football tip" {
		t.Fatalf("heading %q", lines[0])
	}
	for _, l := range lines[1:] {
		if len(l) > 20 {
			t.Fatalf("line not wrapped: %q", l)
		}
	}
}
