package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/export"
	"tableflip.dev/matchday/pkg/log"
	"tableflip.dev/matchday/pkg/store"
)

// Formats lists the supported export formats.
var Formats = []string{"csv", "pdf", "ics"}

type Export struct {
	App    *app.App
	Filter store.Filter
	// Format is csv, pdf or ics. Empty picks it from the Path extension.
	Format string
	// Path is the output file; "-" or empty writes to Out.
	Path string
	Out  io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	format := strings.ToLower(n.Format)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(n.Path)), ".")
	}
	if format == "" {
		format = "csv"
	}

	events := n.App.Events.List(n.Filter)

	out := n.Out
	if out == nil {
		out = color.Output
	}
	if n.Path != "" && n.Path != "-" {
		f, err := os.Create(n.Path)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		defer f.Close()
		out = f
	}

	var err error
	switch format {
	case "csv":
		err = export.CSV(out, events)
	case "pdf":
		err = export.PDF(out, events, export.PDFOptions{Generated: n.App.Now()})
	case "ics", "ical":
		err = export.ICS(out, events, n.App.Now())
	default:
		err = fmt.Errorf("unknown export format %q, use one of %s", format, strings.Join(Formats, ", "))
	}
	if err != nil {
		return err
	}
	if f, ok := out.(*os.File); ok && n.Path != "" && n.Path != "-" {
		if err := f.Sync(); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		log.Info("events exported", "path", n.Path, "format", format, "count", len(events))
	}
	return nil
}
