package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/matchday/pkg/apperr"
	"tableflip.dev/matchday/pkg/event"
	"tableflip.dev/matchday/pkg/settings"
	"tableflip.dev/matchday/pkg/store"
)

var may1 = time.Date(2024, time.May, 1, 9, 30, 0, 0, time.Local)

func openApp(t *testing.T, cfg store.Config, opts Options) *App {
	t.Helper()
	if opts.Now == nil {
		opts.Now = func() time.Time { return may1 }
	}
	a, err := Open(cfg, opts)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return a
}

func add(t *testing.T, a *App, title, date, typ string) event.Event {
	t.Helper()
	e, err := a.Events.Add(event.Draft{Title: title, Date: event.MustDate(date), Type: typ})
	if err != nil {
		t.Fatalf("add %s: %v", title, err)
	}
	return e
}

func TestUpcomingUsesSettings(t *testing.T) {
	a := openApp(t, store.NewConfig(t.TempDir(), ""), Options{})
	add(t, a, "today", "2024-05-01", "match")
	add(t, a, "in two", "2024-05-03", "training")
	add(t, a, "in five", "2024-05-06", "match")

	got, err := a.Upcoming()
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("default lookahead of 2 days: expected 2 events, got %d", len(got))
	}

	days := 5
	if _, err := a.UpdateSettings(settings.Partial{LookaheadDays: &days}); err != nil {
		t.Fatalf("update settings: %v", err)
	}
	if got, _ = a.Upcoming(); len(got) != 3 {
		t.Fatalf("expected 3 events within 5 days, got %d", len(got))
	}
}

func TestCorruptEventsNeedConfirmation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, store.EventsKey)
	if err := os.WriteFile(path, []byte("[{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(store.NewConfig(dir, ""), Options{}); !errors.Is(err, apperr.ErrCorruptStore) {
		t.Fatalf("expected corrupt store error, got %v", err)
	}
	if data, _ := os.ReadFile(path); string(data) != "[{" {
		t.Fatalf("corrupt document modified without confirmation")
	}

	a := openApp(t, store.NewConfig(dir, ""), Options{ResetCorrupt: true})
	if a.Events.Len() != 0 {
		t.Fatalf("expected empty store after reset")
	}
	if data, err := os.ReadFile(a.Backup()); err != nil || string(data) != "[{" {
		t.Fatalf("backup not kept: %v", err)
	}
}

func TestCorruptSettingsDegrade(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, settings.Key), []byte("nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	a := openApp(t, store.NewConfig(dir, ""), Options{})
	if !errors.Is(a.SettingsErr(), apperr.ErrCorruptStore) {
		t.Fatalf("expected settings error to be recorded, got %v", a.SettingsErr())
	}
	if a.Settings.Current() != settings.Defaults() {
		t.Fatalf("expected defaults")
	}
	if _, err := a.ResetSettings(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if a.SettingsErr() != nil {
		t.Fatalf("reset should clear the settings error")
	}
}

func TestSettingsUpdateKeepsCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	doc := `{"calendar_day_fg":"black","my_note":"keep me","reminder_lookahead_days":"seven"}`
	if err := os.WriteFile(filepath.Join(dir, settings.Key), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	a := openApp(t, store.NewConfig(dir, ""), Options{})
	days := 5
	if _, err := a.UpdateSettings(settings.Partial{LookaheadDays: &days}); err != nil {
		t.Fatalf("update settings: %v", err)
	}
	backup := a.Settings.Backup()
	if filepath.Dir(backup) != dir {
		t.Fatalf("unexpected backup location %q", backup)
	}
	data, err := os.ReadFile(backup)
	if err != nil || string(data) != doc {
		t.Fatalf("original settings lost: %q, %v", data, err)
	}
	if a.SettingsErr() != nil {
		t.Fatalf("update should clear the settings error")
	}
}

func TestEmptyContentDegrades(t *testing.T) {
	dir := t.TempDir()
	content := filepath.Join(dir, "content.yaml")
	if err := os.WriteFile(content, []byte("[]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	a := openApp(t, store.NewConfig(dir, content), Options{})
	if _, err := a.Fact(); !errors.Is(err, apperr.ErrEmptyPool) {
		t.Fatalf("expected empty pool, got %v", err)
	}
	if a.Categories() != nil {
		t.Fatalf("expected no categories")
	}
	add(t, a, "still works", "2024-05-01", "")
	if err := a.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestRotationSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	content := filepath.Join(dir, "content.yaml")
	doc := "- {id: a, category: tip, text: one}\n- {id: b, category: tip, text: two}\n- {id: c, category: fact, text: three}\n"
	if err := os.WriteFile(content, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	seed := uint64(4)
	cfg := store.NewConfig(dir, content)

	a := openApp(t, cfg, Options{Seed: &seed})
	first, err := a.NextFact()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	b := openApp(t, cfg, Options{Seed: &seed})
	if cur, _ := b.Fact(); cur != first {
		t.Fatalf("expected %s to stay current, got %s", first.ID, cur.ID)
	}
	for i := 0; i < 2; i++ {
		if it, _ := b.NextFact(); it.ID == first.ID {
			t.Fatalf("rotation repeated %s after restart", it.ID)
		}
	}
}

func TestFactOnDay(t *testing.T) {
	dir := t.TempDir()
	content := filepath.Join(dir, "content.yaml")
	doc := "- {id: a, category: tip, text: one}\n- {id: xmas, category: history, text: two, on: 12-25}\n"
	if err := os.WriteFile(content, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	a := openApp(t, store.NewConfig(dir, content), Options{})
	it, err := a.FactOn(event.MustDate("2030-12-25"))
	if err != nil {
		t.Fatalf("fact on: %v", err)
	}
	if it.ID != "xmas" {
		t.Fatalf("expected the yearly item, got %s", it.ID)
	}
}

func TestReport(t *testing.T) {
	a := openApp(t, store.NewConfig(t.TempDir(), ""), Options{})
	add(t, a, "tournament", "2024-05-04", "tournament")
	add(t, a, "practice", "2024-05-02", "training")
	add(t, a, "derby", "2024-05-03", "match")
	add(t, a, "later", "2024-06-03", "match")

	res := a.Report(event.MustDate("2024-05-31"), event.MustDate("2024-05-01"))
	if res.Total != 3 {
		t.Fatalf("expected 3 events, got %d", res.Total)
	}
	var order []string
	for _, s := range res.Sections {
		order = append(order, s.Type)
	}
	want := []string{"match", "training", "tournament"}
	if len(order) != len(want) {
		t.Fatalf("sections %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("sections %v, want %v", order, want)
		}
	}
}
