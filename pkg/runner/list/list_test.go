package list

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/event"
	"tableflip.dev/matchday/pkg/store"
)

func fixture(t *testing.T) *app.App {
	t.Helper()
	color.NoColor = true
	a, err := app.Open(store.NewConfig(t.TempDir(), ""), app.Options{
		Now: func() time.Time { return time.Date(2024, time.May, 1, 9, 0, 0, 0, time.Local) },
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	for _, d := range []event.Draft{
		{Title: "Derby", Date: event.MustDate("2024-05-03"), Type: "match", Tags: []string{"u15"}},
		{Title: "Practice", Date: event.MustDate("2024-05-02"), Type: "training", Tags: []string{"u15", "keepers"}},
		{Title: "Meeting", Date: event.MustDate("2024-05-02"), Type: "other"},
	} {
		if _, err := a.Events.Add(d); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	return a
}

func TestListJSON(t *testing.T) {
	var buf bytes.Buffer
	l := List{App: fixture(t), Filter: store.Filter{Tags: []string{"u15"}}, JSON: true, Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	var got []event.Event
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if len(got) != 2 || got[0].Title != "Practice" || got[1].Title != "Derby" {
		t.Fatalf("unexpected events %+v", got)
	}
}

func TestListCalendarAndTable(t *testing.T) {
	var buf bytes.Buffer
	l := List{App: fixture(t), Calendar: true, Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"May 2024", "Events - 3 events", "Practice", "Meeting"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Index(out, "Practice") > strings.Index(out, "Meeting") {
		t.Fatalf("same-day events out of insertion order:\n%s", out)
	}
}

func TestListTypesAndTags(t *testing.T) {
	var buf bytes.Buffer
	l := List{App: fixture(t), Tags: true, JSON: true, Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[\n  \"keepers\",\n  \"u15\"\n]" {
		t.Fatalf("unexpected tags %q", buf.String())
	}
}
