// Package tui is the interactive board: a month calendar, the events of the
// selected day, the upcoming reminders and the fact of the day. It reloads
// when the events or settings documents change on disk.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/event"
	"tableflip.dev/matchday/pkg/reminder"
	"tableflip.dev/matchday/pkg/settings"
	"tableflip.dev/matchday/pkg/store"
	"tableflip.dev/matchday/pkg/thematic"
	"tableflip.dev/matchday/pkg/tui/theme"
)

type focus int

const (
	focusDay focus = iota
	focusUpcoming
)

// Model is the Bubble Tea model of the board.
type Model struct {
	ctx context.Context
	app *app.App

	keys  keyMap
	help  help.Model
	theme theme.Theme

	selected event.Date
	today    event.Date
	focus    focus

	dayTable      table.Model
	upcomingTable table.Model
	busy          map[event.Date]int
	fact          *thematic.Item

	status    string
	statusErr bool

	watchCh     <-chan store.Change
	watchCancel context.CancelFunc

	width  int
	height int
}

// New builds the board for a. The board does not own a; the caller closes
// it after Run returns.
func New(ctx context.Context, a *app.App) *Model {
	columns := []table.Column{
		{Title: "Time", Width: 5},
		{Title: "Title", Width: 28},
		{Title: "Type", Width: 10},
	}
	m := &Model{
		ctx:      ctx,
		app:      a,
		keys:     defaultKeys(),
		help:     help.New(),
		today:    a.Today(),
		selected: a.Today(),
		dayTable: table.New(table.WithColumns(columns), table.WithHeight(6), table.WithFocused(true)),
		upcomingTable: table.New(table.WithColumns([]table.Column{
			{Title: "When", Width: 20},
			{Title: "Time", Width: 5},
			{Title: "Title", Width: 28},
		}), table.WithHeight(6)),
	}
	m.applySettings()
	m.refresh()
	if it, err := a.Fact(); err == nil {
		m.fact = &it
	}
	return m
}

// Run launches the board and blocks until the user quits.
func Run(ctx context.Context, a *app.App) error {
	p := tea.NewProgram(New(ctx, a), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

type watchStartedMsg struct {
	ch     <-chan store.Change
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	change store.Change
}

type watchStoppedMsg struct{}

func startWatchCmd(parent context.Context, events *store.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := events.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if c, ok := <-ch; ok {
			return watchEventMsg{change: c}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m *Model) Init() tea.Cmd {
	return startWatchCmd(m.ctx, m.app.Events)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case watchStartedMsg:
		if msg.err != nil {
			m.setError(fmt.Errorf("watch: %w", msg.err))
			break
		}
		m.stopWatch()
		m.watchCh, m.watchCancel = msg.ch, msg.cancel
		cmds = append(cmds, m.waitForWatch())
	case watchEventMsg:
		m.handleChange(msg.change)
		cmds = append(cmds, m.waitForWatch())
	case watchStoppedMsg:
		m.stopWatch()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.stopWatch()
			return m, tea.Quit
		}
		m.handleKey(msg)
	}

	if m.focus == focusUpcoming {
		var cmd tea.Cmd
		m.upcomingTable, cmd = m.upcomingTable.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	moved := true
	switch {
	case key.Matches(msg, m.keys.Left):
		m.selected = m.selected.AddDays(-1)
	case key.Matches(msg, m.keys.Right):
		m.selected = m.selected.AddDays(1)
	case key.Matches(msg, m.keys.Up) && m.focus == focusDay:
		m.selected = m.selected.AddDays(-7)
	case key.Matches(msg, m.keys.Down) && m.focus == focusDay:
		m.selected = m.selected.AddDays(7)
	case key.Matches(msg, m.keys.PrevMonth):
		m.selected = shiftMonth(m.selected, -1)
	case key.Matches(msg, m.keys.NextMonth):
		m.selected = shiftMonth(m.selected, 1)
	case key.Matches(msg, m.keys.Today):
		m.selected = m.today
	default:
		moved = false
	}
	if moved {
		m.refreshDay()
		return
	}

	switch {
	case key.Matches(msg, m.keys.Focus):
		if m.focus == focusDay {
			m.focus = focusUpcoming
			m.dayTable.Blur()
			m.upcomingTable.Focus()
		} else {
			m.focus = focusDay
			m.upcomingTable.Blur()
			m.dayTable.Focus()
		}
	case key.Matches(msg, m.keys.NextFact):
		it, err := m.app.NextFact()
		if err != nil {
			m.setError(err)
			return
		}
		m.fact = &it
	case key.Matches(msg, m.keys.Reload):
		m.handleChange(store.Change{Key: store.EventsKey})
		m.handleChange(store.Change{Key: settings.Key})
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
}

// handleChange reloads the document named by c. A document another
// instance left unreadable keeps the last good state on screen.
func (m *Model) handleChange(c store.Change) {
	switch c.Key {
	case store.EventsKey:
		if err := m.app.Events.Reload(); err != nil {
			m.setError(err)
			return
		}
		m.refresh()
		m.setStatus("events reloaded")
	case settings.Key:
		if _, err := m.app.Settings.Load(); err != nil {
			m.setError(err)
		} else {
			m.setStatus("settings reloaded")
		}
		m.applySettings()
		m.refresh()
	}
}

func (m *Model) applySettings() {
	m.theme = theme.FromSettings(m.app.Settings.Current())
}

func (m *Model) refresh() {
	m.busy = make(map[event.Date]int)
	for _, e := range m.app.Events.List(store.Filter{}) {
		m.busy[e.Date]++
	}
	upcoming, err := m.app.Upcoming()
	if err != nil {
		m.setError(err)
	}
	rows := make([]table.Row, 0, len(upcoming))
	for _, e := range upcoming {
		_, clock, title, _, _ := e.Row()
		rows = append(rows, table.Row{reminder.When(e, m.app.Now()), clock, title})
	}
	m.upcomingTable.SetRows(rows)
	m.refreshDay()
}

func (m *Model) refreshDay() {
	day := m.selected
	events := m.app.Events.List(store.Filter{Date: &day})
	rows := make([]table.Row, 0, len(events))
	for _, e := range events {
		_, clock, title, typ, _ := e.Row()
		rows = append(rows, table.Row{clock, title, typ})
	}
	m.dayTable.SetRows(rows)
	m.dayTable.SetCursor(0)
}

func (m *Model) setStatus(s string) {
	m.status, m.statusErr = s, false
}

func (m *Model) setError(err error) {
	m.status, m.statusErr = "ERR: "+err.Error(), true
}

func (m *Model) View() string {
	th := m.theme

	cal := th.Panel.Frame.Render(renderMonth(th.Calendar, m.selected, m.today, m.busy))

	dayTitle := th.Panel.Title.Render(fmt.Sprintf("%s %s", m.selected.Time().Format("Mon"), m.selected))
	dayBody := m.dayTable.View()
	if len(m.dayTable.Rows()) == 0 {
		dayBody = th.Panel.Empty.Render("no events")
	}
	upTitle := th.Panel.Title.Render(fmt.Sprintf("Upcoming (%d days)", m.app.Settings.Current().LookaheadDays))
	upBody := m.upcomingTable.View()
	if len(m.upcomingTable.Rows()) == 0 {
		upBody = th.Panel.Empty.Render("nothing coming up")
	}
	dayFrame, upFrame := th.Panel.Focused, th.Panel.Frame
	if m.focus == focusUpcoming {
		dayFrame, upFrame = th.Panel.Frame, th.Panel.Focused
	}
	right := lipgloss.JoinVertical(lipgloss.Left,
		dayFrame.Render(dayTitle+"\n"+dayBody),
		upFrame.Render(upTitle+"\n"+upBody),
	)
	top := lipgloss.JoinHorizontal(lipgloss.Top, cal, right)

	var b strings.Builder
	b.WriteString(top)
	b.WriteString("\n")
	b.WriteString(m.factView())
	b.WriteString("\n")
	if m.status != "" {
		style := th.Footer.Status
		if m.statusErr {
			style = th.Footer.Error
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) factView() string {
	th := m.theme
	if m.fact == nil {
		msg := "no content available"
		if err := m.app.ContentErr(); err != nil {
			msg = err.Error()
		}
		return th.Panel.Frame.Render(th.Panel.Empty.Render(msg))
	}
	width := 70
	if m.width > 10 && m.width-6 < width {
		width = m.width - 6
	}
	text := wordwrap.String(m.fact.Text, width)
	return th.Panel.Frame.Render(th.Panel.Title.Render(m.fact.Title()) + "\n" + th.Fact.Render(text))
}

// shiftMonth moves d by n months, clamping the day to the target month.
func shiftMonth(d event.Date, n int) event.Date {
	month := d.Month + time.Month(n)
	year := d.Year
	for month > 12 {
		month -= 12
		year++
	}
	for month < 1 {
		month += 12
		year--
	}
	out := event.Date{Year: year, Month: month, Day: d.Day}
	for !out.Valid() {
		out.Day--
	}
	return out
}
