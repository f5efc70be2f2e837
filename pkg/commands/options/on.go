package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/matchday/pkg/event"
	"tableflip.dev/matchday/pkg/timeutil"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a day, example: --on=2024-05-18, --on=tomorrow or --on=+3.`)
}

// GetOn resolves the flag against today. ok is false when it was not set.
func (o *OnOptions) GetOn(today event.Date) (day event.Date, ok bool, err error) {
	if o.OnString == "" {
		return event.Date{}, false, nil
	}
	day, err = timeutil.ParseDay(o.OnString, today)
	if err != nil {
		return event.Date{}, false, err
	}
	return day, true, nil
}
