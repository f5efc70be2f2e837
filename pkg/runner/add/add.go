package add

import (
	"context"
	"io"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/event"
	"tableflip.dev/matchday/pkg/printers"
)

type Add struct {
	App   *app.App
	Draft event.Draft
	JSON  bool
	Out   io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	e, err := n.App.Events.Add(n.Draft)
	if err != nil {
		return err
	}

	pp := printers.New(n.Out)
	if n.JSON {
		return pp.JSON(e)
	}
	pp.Event(e)
	return nil
}
