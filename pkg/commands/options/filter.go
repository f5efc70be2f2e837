package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/matchday/pkg/apperr"
	"tableflip.dev/matchday/pkg/event"
	"tableflip.dev/matchday/pkg/store"
	"tableflip.dev/matchday/pkg/timeutil"
)

// FilterOptions select events for list and export.
type FilterOptions struct {
	On   string
	From string
	To   string
	Type string
	Tags string
	Text string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVar(&o.On, "on", "",
		"Only events on this day.")
	cmd.Flags().StringVar(&o.From, "from", "",
		"Only events on or after this day.")
	cmd.Flags().StringVar(&o.To, "to", "",
		"Only events on or before this day.")
	cmd.Flags().StringVarP(&o.Type, "type", "t", "",
		"Only events of this type.")
	cmd.Flags().StringVar(&o.Tags, "tags", "",
		"Only events carrying all of these comma separated tags.")
	cmd.Flags().StringVarP(&o.Text, "search", "s", "",
		"Only events whose title or details contain this text.")
}

// Filter resolves the flags against today. --from without --to is open
// ended, and so is --to without --from.
func (o *FilterOptions) Filter(today event.Date) (store.Filter, error) {
	f := store.Filter{Type: o.Type, Text: o.Text}
	if o.Tags != "" {
		f.Tags = event.SplitTags(o.Tags)
	}
	if o.On != "" {
		day, err := timeutil.ParseDay(o.On, today)
		if err != nil {
			return f, apperr.Validation("on", "%v", err)
		}
		f.Date = &day
	}
	if o.From != "" || o.To != "" {
		r := store.DateRange{
			From: event.Date{Year: 1, Month: 1, Day: 1},
			To:   event.Date{Year: 9999, Month: 12, Day: 31},
		}
		var err error
		if o.From != "" {
			if r.From, err = timeutil.ParseDay(o.From, today); err != nil {
				return f, apperr.Validation("from", "%v", err)
			}
		}
		if o.To != "" {
			if r.To, err = timeutil.ParseDay(o.To, today); err != nil {
				return f, apperr.Validation("to", "%v", err)
			}
		}
		if r.From.After(r.To) {
			return f, apperr.Validation("from", "%s is after %s", r.From, r.To)
		}
		f.Range = &r
	}
	return f, nil
}
