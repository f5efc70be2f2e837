package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/matchday/pkg/event"
	"tableflip.dev/matchday/pkg/tui/theme"
)

// renderMonth draws the month of selected as a Monday first grid.
func renderMonth(th theme.CalendarTheme, selected, today event.Date, busy map[event.Date]int) string {
	first := event.Date{Year: selected.Year, Month: selected.Month, Day: 1}
	days := time.Date(selected.Year, selected.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	col := int(time.Date(first.Year, first.Month, 1, 12, 0, 0, 0, time.UTC).Weekday()+6) % 7

	var b strings.Builder
	title := fmt.Sprintf("%s %d", selected.Month, selected.Year)
	b.WriteString(th.Header.Width(21).Align(lipgloss.Center).Render(title))
	b.WriteString("\n")
	b.WriteString(th.Weekdays.Render(" Mo Tu We Th Fr Sa Su"))
	b.WriteString("\n")

	var week []string
	for i := 0; i < col; i++ {
		week = append(week, th.Day.Render(""))
	}
	for day := 1; day <= days; day++ {
		d := event.Date{Year: selected.Year, Month: selected.Month, Day: day}
		week = append(week, dayStyle(th, d, selected, today, busy[d] > 0).Render(fmt.Sprint(day)))
		if len(week) == 7 {
			b.WriteString(strings.Join(week, ""))
			b.WriteString("\n")
			week = week[:0]
		}
	}
	if len(week) > 0 {
		b.WriteString(strings.Join(week, ""))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func dayStyle(th theme.CalendarTheme, d, selected, today event.Date, busy bool) lipgloss.Style {
	switch {
	case d == selected && busy:
		return th.SelectedEventDay
	case d == selected:
		return th.SelectedDay
	case busy:
		return th.EventDay
	case d == today:
		return th.Today
	}
	return th.Day
}
