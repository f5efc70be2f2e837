package remove

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/apperr"
	"tableflip.dev/matchday/pkg/event"
	"tableflip.dev/matchday/pkg/store"
)

func TestRemoveTwiceFails(t *testing.T) {
	a, err := app.Open(store.NewConfig(t.TempDir(), ""), app.Options{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	e, err := a.Events.Add(event.Draft{Title: "Derby", Date: event.MustDate("2024-05-03")})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := (&Remove{App: a, IDs: []string{e.ID}, Out: &buf}).Do(context.Background()); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if a.Events.Len() != 0 {
		t.Fatalf("event still stored")
	}
	err = (&Remove{App: a, IDs: []string{e.ID}, Out: &buf}).Do(context.Background())
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
