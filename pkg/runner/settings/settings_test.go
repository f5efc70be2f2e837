package settings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/apperr"
	"tableflip.dev/matchday/pkg/settings"
	"tableflip.dev/matchday/pkg/store"
)

func TestSetGetReset(t *testing.T) {
	color.NoColor = true
	a, err := app.Open(store.NewConfig(t.TempDir(), ""), app.Options{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	run := func(s Settings) string {
		t.Helper()
		var buf bytes.Buffer
		s.App, s.Out = a, &buf
		if err := s.Do(context.Background()); err != nil {
			t.Fatalf("settings: %v", err)
		}
		return buf.String()
	}

	run(Settings{Op: Set, Key: "reminder_lookahead_days", Value: "5"})
	if got := strings.TrimSpace(run(Settings{Op: Get, Key: "reminder_lookahead_days"})); got != "5" {
		t.Fatalf("got %q", got)
	}

	err = (&Settings{App: a, Op: Set, Key: "reminder_lookahead_days", Value: "-1", Out: &bytes.Buffer{}}).Do(context.Background())
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if a.Settings.Current().LookaheadDays != 5 {
		t.Fatalf("rejected update changed settings")
	}

	out := run(Settings{Op: Reset})
	if !strings.Contains(out, "reminder_lookahead_days") || a.Settings.Current().LookaheadDays != 2 {
		t.Fatalf("reset failed:\n%s", out)
	}
}

func TestGetJSONWithCorruptDocument(t *testing.T) {
	color.NoColor = true
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, settings.Key), []byte("nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	a, err := app.Open(store.NewConfig(dir, ""), app.Options{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	var out, warn bytes.Buffer
	s := Settings{App: a, Op: Get, JSON: true, Out: &out, ErrOut: &warn}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("settings: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, out.String())
	}
	if !strings.Contains(warn.String(), "showing defaults") {
		t.Fatalf("expected a warning, got %q", warn.String())
	}
}
