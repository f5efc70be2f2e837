package show

import (
	"context"
	"io"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/printers"
)

type Show struct {
	App  *app.App
	ID   string
	JSON bool
	Out  io.Writer
}

func (n *Show) Do(ctx context.Context) error {
	e, err := n.App.Events.Get(n.ID)
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
