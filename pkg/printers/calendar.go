package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/muesli/termenv"

	"tableflip.dev/matchday/pkg/event"
	"tableflip.dev/matchday/pkg/settings"
)

const width = len("Mo Tu We Th Fr Sa Su") // an example week

// Calendar prints the month containing selected, weeks starting on Monday.
// Days with events and the selected day are painted in the settings colors.
func (pp *PrettyPrint) Calendar(selected event.Date, s settings.Settings, events ...event.Event) {
	busy := make(map[int]int)
	for _, e := range events {
		if e.Date.Year == selected.Year && e.Date.Month == selected.Month {
			busy[e.Date.Day]++
		}
	}

	tf := color.New(color.Bold)
	m := fmt.Sprintf("%s %d", selected.Month, selected.Year)
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(pp.Out, "%s%s\n", strings.Repeat(" ", max(mid, 0)), m)
	_, _ = color.New(color.Faint).Fprintln(pp.Out, "Mo Tu We Th Fr Sa Su")

	first := event.Date{Year: selected.Year, Month: selected.Month, Day: 1}
	col := Weekday(first)
	fmt.Fprint(pp.Out, strings.Repeat("   ", col))

	days := DaysIn(selected)
	for day := 1; day <= days; day++ {
		fmt.Fprint(pp.Out, pp.paint(day, day == selected.Day, busy[day] > 0, s))
		col++
		if col == 7 {
			col = 0
			fmt.Fprintln(pp.Out)
		}
	}
	if col != 0 {
		fmt.Fprintln(pp.Out)
	}
	pp.NewLine()
}

// paint renders one three column day cell. Without color the third column
// marks the day: '*' has events, '<' is selected, '#' is both.
func (pp *PrettyPrint) paint(day int, selected, busy bool, s settings.Settings) string {
	cell := fmt.Sprintf("%2d", day)
	if pp.Profile == termenv.Ascii {
		switch {
		case selected && busy:
			return cell + "#"
		case selected:
			return cell + "<"
		case busy:
			return cell + "*"
		}
		return cell + " "
	}

	bg := ""
	switch {
	case selected && busy:
		bg = s.SelectedEventDayBG
	case selected:
		bg = s.SelectedDayBG
	case busy:
		bg = s.EventDayBG
	}
	style := pp.Profile.String(cell)
	if bg != "" {
		if hex, err := settings.ParseColor(bg); err == nil {
			style = style.Background(pp.Profile.Color(hex))
		}
		if hex, err := settings.ParseColor(s.DayFG); err == nil {
			style = style.Foreground(pp.Profile.Color(hex))
		}
	}
	return style.String() + " "
}

// DaysIn is the number of days in the month of d.
func DaysIn(d event.Date) int {
	return time.Date(d.Year, d.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Weekday is the column of d in a Monday first week.
func Weekday(d event.Date) int {
	wd := time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC).Weekday()
	return (int(wd) + 6) % 7
}
