package upcoming

import (
	"context"
	"fmt"
	"io"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/printers"
)

type Upcoming struct {
	App *app.App
	// Days overrides the lookahead from the settings when not nil.
	Days *int
	JSON bool
	Out  io.Writer
}

func (n *Upcoming) Do(ctx context.Context) error {
	days := n.App.Settings.Current().LookaheadDays
	if n.Days != nil {
		days = *n.Days
	}
	events, err := n.App.UpcomingWithin(days)
	if err != nil {
		return err
	}

	pp := printers.New(n.Out)
	if n.JSON {
		return pp.JSON(events)
	}
	title := "Upcoming today"
	if days > 0 {
		title = fmt.Sprintf("Upcoming in the next %d days", days)
	}
	pp.TitleWithCount(title, len(events))
	pp.Upcoming(n.App.Now(), events...)
	return nil
}
