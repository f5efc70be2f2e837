// Package export renders event lists for use outside the application: a
// CSV table, a printable PDF and an iCalendar feed.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"tableflip.dev/matchday/pkg/event"
)

// CSVHeader is the fixed column order of CSV exports.
var CSVHeader = []string{"title", "date", "time", "type", "details", "tags"}

// CSV writes one row per event, in the given order, after a header row.
func CSV(w io.Writer, events []event.Event) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("export: csv header: %w", err)
	}
	for _, e := range events {
		row := []string{e.Title, e.Date.String(), e.Time, e.Type, e.Details, strings.Join(e.Tags, ", ")}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: csv row %s: %w", e.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
