package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/event"
	"tableflip.dev/matchday/pkg/reminder"
	"tableflip.dev/matchday/pkg/settings"
	"tableflip.dev/matchday/pkg/thematic"
)

type PrettyPrint struct {
	ShowID bool
	// Width wraps long text; zero disables wrapping.
	Width   int
	Out     io.Writer
	Profile termenv.Profile
}

// New prints to out, or to the color aware stdout when out is nil, using
// the color profile of the terminal.
func New(out io.Writer) *PrettyPrint {
	if out == nil {
		out = color.Output
	}
	return &PrettyPrint{Out: out, Width: 72, Profile: termenv.EnvColorProfile()}
}

var (
	spacing = strings.Repeat(" ", len("5b3e9a74-0f3c-4c1a-9d55-0a8e7f2b6c11  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Fprintln(pp.Out)
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.Out, title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.Out, title)
	_, _ = c.Fprintf(pp.Out, " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.Out, " event")
	default:
		_, _ = c.Fprintln(pp.Out, " events")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.Out, " none\n\n")
}

// Events prints one table row per event.
func (pp *PrettyPrint) Events(events ...event.Event) {
	if len(events) == 0 {
		pp.none()
		return
	}
	table := uitable.New()
	table.MaxColWidth = 48
	for _, e := range events {
		date, clock, title, typ, tags := e.Row()
		if pp.ShowID {
			table.AddRow(e.ID, date, clock, title, typ, tags)
		} else {
			table.AddRow(date, clock, title, typ, tags)
		}
	}
	fmt.Fprintln(pp.Out, table)
	pp.NewLine()
}

// Upcoming prints events with how far away they are.
func (pp *PrettyPrint) Upcoming(now time.Time, events ...event.Event) {
	if len(events) == 0 {
		pp.none()
		return
	}
	y := color.New(color.FgHiYellow)
	table := uitable.New()
	table.MaxColWidth = 48
	for _, e := range events {
		_, clock, title, typ, _ := e.Row()
		table.AddRow(y.Sprint(reminder.When(e, now)), clock, title, typ)
	}
	fmt.Fprintln(pp.Out, table)
	pp.NewLine()
}

// Event prints every field of e.
func (pp *PrettyPrint) Event(e event.Event) {
	pp.Title(e.Title)
	table := uitable.New()
	table.Wrap = true
	table.MaxColWidth = 60
	table.AddRow("id:", e.ID)
	table.AddRow("date:", e.Date)
	if e.Time != "" {
		table.AddRow("time:", e.Time)
	}
	table.AddRow("type:", e.Type)
	if len(e.Tags) > 0 {
		table.AddRow("tags:", strings.Join(e.Tags, ", "))
	}
	if e.Details != "" {
		table.AddRow("details:", e.Details)
	}
	fmt.Fprintln(pp.Out, table)
	pp.NewLine()
}

// Fact prints a content item under its category heading.
func (pp *PrettyPrint) Fact(it thematic.Item) {
	h := color.New(color.FgHiCyan, color.Bold)
	_, _ = h.Fprintln(pp.Out, it.Title())
	text := it.Text
	if pp.Width > 0 {
		text = wordwrap.String(text, pp.Width)
	}
	fmt.Fprintln(pp.Out, text)
	pp.NewLine()
}

// Settings prints the preferences, colors as swatches when the terminal can
// show them.
func (pp *PrettyPrint) Settings(s settings.Settings) {
	table := uitable.New()
	for _, key := range settings.Keys() {
		v, _ := s.Get(key)
		if key == settings.KeyLookaheadDays {
			table.AddRow(key, v)
			continue
		}
		table.AddRow(key, pp.swatch(v)+" "+v)
	}
	fmt.Fprintln(pp.Out, table)
}

func (pp *PrettyPrint) swatch(c string) string {
	hex, err := settings.ParseColor(c)
	if err != nil || pp.Profile == termenv.Ascii {
		return " "
	}
	return pp.Profile.String("  ").Background(pp.Profile.Color(hex)).String()
}

// Report prints a per-type summary of a date range.
func (pp *PrettyPrint) Report(res app.ReportResult) {
	pp.TitleWithCount(fmt.Sprintf("%s .. %s", res.From, res.To), res.Total)
	for _, s := range res.Sections {
		_, _ = color.New(color.Bold).Fprintf(pp.Out, "%s (%d)\n", s.Type, len(s.Events))
		pp.Events(s.Events...)
	}
}

// JSON writes v indented, for --json output.
func (pp *PrettyPrint) JSON(v any) error {
	enc := json.NewEncoder(pp.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Line prints s on its own line.
func (pp *PrettyPrint) Line(s string) {
	fmt.Fprintf(pp.Out, "  %s\n", s)
}
