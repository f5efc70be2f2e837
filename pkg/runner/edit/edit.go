package edit

import (
	"context"
	"io"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/apperr"
	"tableflip.dev/matchday/pkg/event"
	"tableflip.dev/matchday/pkg/printers"
)

type Edit struct {
	App   *app.App
	ID    string
	Patch event.Patch
	JSON  bool
	Out   io.Writer
}

func (n *Edit) Do(ctx context.Context) error {
	if _, err := n.App.Events.Get(n.ID); err != nil {
		return err
	}
	if n.Patch.IsEmpty() {
		return apperr.Validation("fields", "nothing to change, set at least one field")
	}
	e, err := n.App.Events.Update(n.ID, n.Patch)
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
