package remove

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/matchday/pkg/app"
)

type Remove struct {
	App *app.App
	IDs []string
	Out io.Writer
}

// Do removes every id in turn and stops at the first failure; events
// removed before it stay removed.
func (n *Remove) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}
	for _, id := range n.IDs {
		e, err := n.App.Events.Get(id)
		if err != nil {
			return err
		}
		if err := n.App.Events.Remove(id); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "removed %s\n", e)
	}
	return nil
}
