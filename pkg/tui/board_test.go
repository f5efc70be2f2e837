package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/event"
	"tableflip.dev/matchday/pkg/store"
)

func newBoard(t *testing.T) (*Model, *app.App) {
	t.Helper()
	dir := t.TempDir()
	content := filepath.Join(dir, "content.yaml")
	doc := "- {id: a, category: tip, text: one}\n- {id: b, category: fact, text: two}\n"
	if err := os.WriteFile(content, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	seed := uint64(1)
	a, err := app.Open(store.NewConfig(dir, content), app.Options{
		Seed: &seed,
		Now:  func() time.Time { return time.Date(2024, time.May, 31, 10, 0, 0, 0, time.Local) },
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := a.Events.Add(event.Draft{Title: "Cup final", Date: event.MustDate("2024-06-01"), Time: "15:00", Type: "match"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	return New(context.Background(), a), a
}

func press(m *Model, msg tea.KeyMsg) {
	m.Update(msg)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBoardNavigation(t *testing.T) {
	m, _ := newBoard(t)
	if len(m.upcomingTable.Rows()) != 1 {
		t.Fatalf("expected the cup final to be upcoming, got %d rows", len(m.upcomingTable.Rows()))
	}
	if len(m.dayTable.Rows()) != 0 {
		t.Fatalf("nothing is planned today")
	}

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.selected.String() != "2024-06-01" {
		t.Fatalf("selected %s", m.selected)
	}
	if len(m.dayTable.Rows()) != 1 || m.dayTable.Rows()[0][1] != "Cup final" {
		t.Fatalf("day table %v", m.dayTable.Rows())
	}

	press(m, runes("["))
	if m.selected.String() != "2024-05-01" {
		t.Fatalf("previous month selected %s", m.selected)
	}
	press(m, runes("t"))
	if m.selected != m.today {
		t.Fatalf("expected today")
	}
}

func TestBoardNextFact(t *testing.T) {
	m, _ := newBoard(t)
	if m.fact == nil {
		t.Fatalf("expected a fact")
	}
	first := *m.fact
	press(m, runes("n"))
	if m.fact == nil || m.fact.ID == first.ID {
		t.Fatalf("next fact repeated %s", first.ID)
	}
}

func TestBoardReloadsExternalChange(t *testing.T) {
	m, a := newBoard(t)
	other, err := store.Open(a.Config)
	if err != nil {
		t.Fatalf("second instance: %v", err)
	}
	if _, err := other.Add(event.Draft{Title: "Training", Date: event.MustDate("2024-05-31")}); err != nil {
		t.Fatalf("add: %v", err)
	}
	m.handleChange(store.Change{Key: store.EventsKey})
	if len(m.dayTable.Rows()) != 1 {
		t.Fatalf("expected the new event for today, got %v", m.dayTable.Rows())
	}
	if m.statusErr {
		t.Fatalf("unexpected error status %q", m.status)
	}
}

func TestBoardView(t *testing.T) {
	m, _ := newBoard(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	view := m.View()
	for _, want := range []string{"May 2024", "Upcoming", "Cup final"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view misses %q:\n%s", want, view)
		}
	}
}

func TestShiftMonth(t *testing.T) {
	tests := map[string]struct {
		n    int
		want string
	}{
		"2024-01-31": {1, "2024-02-29"},
		"2024-12-15": {1, "2025-01-15"},
		"2024-01-10": {-1, "2023-12-10"},
	}
	for in, tt := range tests {
		if got := shiftMonth(event.MustDate(in), tt.n); got.String() != tt.want {
			t.Errorf("shiftMonth(%s, %d) = %s, want %s", in, tt.n, got, tt.want)
		}
	}
}

func TestQuit(t *testing.T) {
	m, _ := newBoard(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message")
	}
}
