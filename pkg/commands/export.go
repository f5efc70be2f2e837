package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/commands/options"
	"tableflip.dev/matchday/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	output := &options.OutputOptions{}
	s := export.Export{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export events as CSV, PDF or iCalendar",
		Long: options.Wrap80("Export the listed events. CSV columns are title, date, time, " +
			"type, details and tags. The format follows the file extension unless --format is set."),
		Example: `
matchday export -o events.csv
matchday export -o season.pdf --from=2024-08-01 --to=2025-06-30
matchday export --format=ics --type=match > matches.ics
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := withApp(func(a *app.App) error {
				f, err := fo.Filter(a.Today())
				if err != nil {
					return err
				}
				s.App = a
				s.Filter = f
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}

	options.AddFilterArgs(cmd, fo)
	registerCompletions(cmd)
	cmd.Flags().StringVarP(&s.Path, "output", "o", "-", "Output file, - for stdout.")
	cmd.Flags().StringVarP(&s.Format, "format", "f", "", "One of "+strings.Join(export.Formats, ", ")+".")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return export.Formats, cobra.ShellCompDirectiveNoFileComp
	})
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
