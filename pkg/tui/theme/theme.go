// Package theme holds the Lip Gloss styles of the board. Calendar colors
// come from the user settings.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/matchday/pkg/settings"
)

// Theme centralizes Lip Gloss styles for the board.
type Theme struct {
	Panel    PanelTheme
	Calendar CalendarTheme
	Footer   FooterTheme
	Fact     lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame   lipgloss.Style
	Focused lipgloss.Style
	Title   lipgloss.Style
	Empty   lipgloss.Style
}

// CalendarTheme styles the day cells of the month grid.
type CalendarTheme struct {
	Header           lipgloss.Style
	Weekdays         lipgloss.Style
	Day              lipgloss.Style
	Today            lipgloss.Style
	EventDay         lipgloss.Style
	SelectedDay      lipgloss.Style
	SelectedEventDay lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Status lipgloss.Style
	Error  lipgloss.Style
}

// FromSettings builds the theme painting the calendar in the user's colors.
// Colors that fail to parse fall back to the defaults.
func FromSettings(s settings.Settings) Theme {
	d := settings.Defaults()
	fg := color(s.DayFG, d.DayFG)
	cell := lipgloss.NewStyle().Width(3).Align(lipgloss.Right)

	return Theme{
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("241")).
				Padding(0, 1),
			Focused: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(color(s.MainWindowBG, d.MainWindowBG)).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
			Empty: lipgloss.NewStyle().Faint(true).Italic(true),
		},
		Calendar: CalendarTheme{
			Header:           lipgloss.NewStyle().Bold(true),
			Weekdays:         lipgloss.NewStyle().Faint(true),
			Day:              cell,
			Today:            cell.Bold(true).Underline(true),
			EventDay:         cell.Foreground(fg).Background(color(s.EventDayBG, d.EventDayBG)),
			SelectedDay:      cell.Foreground(fg).Background(color(s.SelectedDayBG, d.SelectedDayBG)),
			SelectedEventDay: cell.Foreground(fg).Background(color(s.SelectedEventDayBG, d.SelectedEventDayBG)),
		},
		Footer: FooterTheme{
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		Fact: lipgloss.NewStyle().Italic(true),
	}
}

func color(v, fallback string) lipgloss.Color {
	hex, err := settings.ParseColor(v)
	if err != nil {
		hex, _ = settings.ParseColor(fallback)
	}
	return lipgloss.Color(hex)
}
