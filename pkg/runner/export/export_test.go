package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/event"
	"tableflip.dev/matchday/pkg/store"
)

func fixture(t *testing.T) *app.App {
	t.Helper()
	a, err := app.Open(store.NewConfig(t.TempDir(), ""), app.Options{
		Now: func() time.Time { return time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := a.Events.Add(event.Draft{Title: "Derby", Date: event.MustDate("2024-05-03"), Type: "match"}); err != nil {
		t.Fatal(err)
	}
	return a
}

func TestExportFormatFromExtension(t *testing.T) {
	a := fixture(t)
	dir := t.TempDir()
	for _, name := range []string{"events.csv", "events.pdf", "events.ics"} {
		path := filepath.Join(dir, name)
		if err := (&Export{App: a, Path: path}).Do(context.Background()); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		data, err := os.ReadFile(path)
		if err != nil || len(data) == 0 {
			t.Fatalf("%s: nothing written (%v)", name, err)
		}
	}
}

func TestExportToOut(t *testing.T) {
	var buf bytes.Buffer
	if err := (&Export{App: fixture(t), Format: "csv", Out: &buf}).Do(context.Background()); err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "title,date,time,type,details,tags\nDerby,2024-05-03,") {
		t.Fatalf("unexpected csv %q", buf.String())
	}
	if err := (&Export{App: fixture(t), Format: "xls", Out: &buf}).Do(context.Background()); err == nil {
		t.Fatalf("expected unknown format error")
	}
}
