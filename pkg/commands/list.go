package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/commands/options"
	"tableflip.dev/matchday/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	ido := &options.IDOptions{}
	output := &options.OutputOptions{}
	var calendar, types, tags bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "get"},
		Short:   "List events, optionally filtered",
		Long: options.Wrap80("List events ordered by date; events on the same day keep the " +
			"order they were added in. All filters given must match."),
		Example: `
matchday list
matchday list --from=today --to=+2w --type=match
matchday list --tags=u15,league --calendar
matchday list --types
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := withApp(func(a *app.App) error {
				f, err := fo.Filter(a.Today())
				if err != nil {
					return err
				}
				s := list.List{
					App:      a,
					Filter:   f,
					ShowID:   ido.ShowID,
					JSON:     output.JSON,
					Calendar: calendar,
					Types:    types,
					Tags:     tags,
				}
				switch {
				case f.Date != nil:
					s.Month = *f.Date
				case f.Range != nil && f.Range.From.Year > 1:
					s.Month = f.Range.From
				}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}

	options.AddFilterArgs(cmd, fo)
	registerCompletions(cmd)
	options.AddShowIDArgs(cmd, ido)
	cmd.Flags().BoolVarP(&calendar, "calendar", "c", false, "Print the month calendar above the list.")
	cmd.Flags().BoolVar(&types, "types", false, "List the event types in use.")
	cmd.Flags().BoolVar(&tags, "tag-names", false, "List the tags in use.")
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
