package list

import (
	"context"
	"io"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/event"
	"tableflip.dev/matchday/pkg/printers"
	"tableflip.dev/matchday/pkg/store"
)

type List struct {
	App    *app.App
	Filter store.Filter
	ShowID bool
	JSON   bool
	// Calendar prints the month of Month above the list, painted in the
	// settings colors.
	Calendar bool
	Month    event.Date
	// Types and Tags print the values in use instead of events.
	Types bool
	Tags  bool
	Out   io.Writer
}

func (n *List) Do(ctx context.Context) error {
	pp := printers.New(n.Out)
	pp.ShowID = n.ShowID

	switch {
	case n.Types:
		return n.names(pp, "Types", n.App.Events.Types())
	case n.Tags:
		return n.names(pp, "Tags", n.App.Events.Tags())
	}

	events := n.App.Events.List(n.Filter)
	if n.JSON {
		return pp.JSON(events)
	}
	if n.Calendar {
		month := n.Month
		if month.IsZero() {
			month = n.App.Today()
		}
		pp.Calendar(month, n.App.Settings.Current(), n.App.Events.List(store.Filter{})...)
	}
	pp.TitleWithCount("Events", len(events))
	pp.Events(events...)
	return nil
}

func (n *List) names(pp *printers.PrettyPrint, title string, names []string) error {
	if n.JSON {
		return pp.JSON(names)
	}
	pp.TitleWithCount(title, len(names))
	for _, name := range names {
		pp.Line(name)
	}
	pp.NewLine()
	return nil
}
