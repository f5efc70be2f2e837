package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/commands/options"
	"tableflip.dev/matchday/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	output := &options.OutputOptions{}
	var report bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Where events, settings and content are stored.",
		Example: `
matchday info
matchday info --report
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := withApp(func(a *app.App) error {
				s := info.Info{App: a, Report: report}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&report, "report", false, "Summarize this month's events by type.")
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
