package export

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"tableflip.dev/matchday/pkg/event"
)

func sample() []event.Event {
	return []event.Event{
		{ID: "1", Title: "Derby", Date: event.MustDate("2024-05-03"), Time: "18:30", Type: "match", Details: "Away, bring \"both\" kits", Tags: []string{"u15", "league"}},
		{ID: "2", Title: "Practice", Date: event.MustDate("2024-05-04"), Type: "training", Tags: []string{}},
	}
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := CSV(&buf, sample()); err != nil {
		t.Fatalf("csv: %v", err)
	}
	want := "title,date,time,type,details,tags\n" +
		"Derby,2024-05-03,18:30,match,\"Away, bring \"\"both\"\" kits\",\"u15, league\"\n" +
		"Practice,2024-05-04,,training,,\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected csv:\n%s\nwant:\n%s", got, want)
	}
}

func TestCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := CSV(&buf, nil); err != nil {
		t.Fatalf("csv: %v", err)
	}
	if buf.String() != "title,date,time,type,details,tags\n" {
		t.Fatalf("expected header only, got %q", buf.String())
	}
}

func TestPDF(t *testing.T) {
	var many []event.Event
	for i := 0; i < 60; i++ {
		many = append(many, event.Event{
			ID:      fmt.Sprint(i),
			Title:   fmt.Sprintf("Übung %d", i),
			Date:    event.MustDate("2024-05-01").AddDays(i),
			Type:    "training",
			Details: strings.Repeat("drills ", 20),
		})
	}
	for name, events := range map[string][]event.Event{"none": nil, "sample": sample(), "many pages": many} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			err := PDF(&buf, events, PDFOptions{Generated: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)})
			if err != nil {
				t.Fatalf("pdf: %v", err)
			}
			if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
				t.Fatalf("output is not a PDF")
			}
		})
	}
}

func TestICS(t *testing.T) {
	var buf bytes.Buffer
	if err := ICS(&buf, sample(), time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("ics: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"UID:1@matchday",
		"SUMMARY:Derby",
		"SUMMARY:Practice",
		"VALUE=DATE",
		"20240504",
		"CATEGORIES:u15",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "BEGIN:VEVENT"); n != 2 {
		t.Fatalf("expected 2 events, got %d", n)
	}
}
