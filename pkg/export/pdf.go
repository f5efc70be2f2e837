package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"tableflip.dev/matchday/pkg/event"
)

// PDFOptions tune the printable overview.
type PDFOptions struct {
	Title     string
	Generated time.Time
}

// PDF writes an A4 overview of events: a heading line per event followed by
// its time, details and tags. Every page carries the generation time and
// the page number in its footer.
func PDF(w io.Writer, events []event.Event, opts PDFOptions) error {
	if opts.Title == "" {
		opts.Title = "Football events overview"
	}
	if opts.Generated.IsZero() {
		opts.Generated = time.Now()
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("")
	pdf.SetTitle(opts.Title, true)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 8)
		footer := fmt.Sprintf("Generated %s - page %d/{nb}", opts.Generated.Format("02.01.2006 15:04:05"), pdf.PageNo())
		pdf.CellFormat(0, 10, tr(footer), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr(opts.Title), "", 1, "L", false, 0, "")
	pdf.Ln(5)

	if len(events) == 0 {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 6, tr("No events to export."), "", 1, "L", false, 0, "")
	}
	for _, e := range events {
		pdf.SetFont("Helvetica", "B", 12)
		heading := fmt.Sprintf("%02d.%02d.%04d - %s (%s)", e.Date.Day, int(e.Date.Month), e.Date.Year, e.Title, e.Type)
		pdf.MultiCell(0, 6, tr(heading), "", "L", false)

		pdf.SetFont("Helvetica", "", 9)
		for _, line := range detailLines(e) {
			pdf.SetX(25)
			pdf.MultiCell(0, 4.5, tr(line), "", "L", false)
		}
		pdf.Ln(3)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export: pdf: %w", err)
	}
	return nil
}

func detailLines(e event.Event) []string {
	var lines []string
	if e.Time != "" {
		lines = append(lines, "Time: "+e.Time)
	}
	if e.Details != "" {
		lines = append(lines, "Details: "+e.Details)
	}
	if len(e.Tags) > 0 {
		lines = append(lines, "Tags: "+strings.Join(e.Tags, ", "))
	}
	return lines
}
