package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/commands/options"
	"tableflip.dev/matchday/pkg/runner/upcoming"
	"tableflip.dev/matchday/pkg/timeutil"
)

func addUpcoming(topLevel *cobra.Command) {
	output := &options.OutputOptions{}
	var window string

	cmd := &cobra.Command{
		Use:     "upcoming",
		Aliases: []string{"next", "soon"},
		Short:   "Show the events coming up",
		Long: options.Wrap80("Show the events from today through the lookahead window, " +
			"both days included. The window defaults to the reminder_lookahead_days setting."),
		Example: `
matchday upcoming
matchday upcoming --within=1w
matchday upcoming --within=0
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := withApp(func(a *app.App) error {
				s := upcoming.Upcoming{App: a, JSON: output.JSON}
				if cmd.Flags().Changed("within") {
					days, _, err := timeutil.ParseDays(window)
					if err != nil {
						return err
					}
					s.Days = &days
				}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&window, "within", "w", "", `Lookahead window, example: --within=3d or --within=1w.`)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
