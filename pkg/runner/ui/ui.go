package ui

import (
	"context"
	"io"
	"os"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/log"
	"tableflip.dev/matchday/pkg/tui"
)

type UI struct {
	App *app.App
	// LogTo receives log lines while the board owns the terminal.
	LogTo io.Writer
}

func (d *UI) Do(ctx context.Context) error {
	if d.LogTo == nil {
		d.LogTo = io.Discard
	}
	log.SetOutput(d.LogTo)
	defer log.SetOutput(os.Stderr)
	return tui.Run(ctx, d.App)
}
