package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/event"
	"tableflip.dev/matchday/pkg/printers"
	"tableflip.dev/matchday/pkg/store"
)

type Info struct {
	App *app.App
	// Report summarizes the events of the current month by type.
	Report bool
	Out    io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("MATCHDAY_CONFIG_PATH"); override != "" {
		fmt.Fprintln(out, "MATCHDAY_CONFIG_PATH found on env, using ", override)
	} else {
		fmt.Fprintln(out, "MATCHDAY_CONFIG_PATH env var not set")
	}
	if src := store.SourceOf(n.App.Config); src != "" {
		fmt.Fprintln(out, "Config file: ", src)
	}

	fmt.Fprintln(out, "Config.path: ", n.App.Config.BasePath())
	fmt.Fprintln(out, "Events file: ", n.App.Events.Path())
	fmt.Fprintln(out, "Settings file: ", n.App.Settings.Path())
	content := n.App.Config.ContentPath()
	if content == "" {
		content = "built-in"
	}
	fmt.Fprintln(out, "Content: ", content)

	fmt.Fprintf(out, "Events: %d\n", n.App.Events.Len())
	if err := n.App.SettingsErr(); err != nil {
		fmt.Fprintf(out, "Settings: %v\n", err)
	}
	if err := n.App.ContentErr(); err != nil {
		fmt.Fprintf(out, "Content: %v\n", err)
	}

	if n.Report {
		today := n.App.Today()
		from := event.Date{Year: today.Year, Month: today.Month, Day: 1}
		to := event.Date{Year: today.Year, Month: today.Month, Day: printers.DaysIn(today)}
		fmt.Fprintln(out)
		printers.New(out).Report(n.App.Report(from, to))
	}
	return nil
}
