package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/commands/options"
	"tableflip.dev/matchday/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "show <event id>",
		Short: "Show every field of an event",
		Example: `
matchday show 5b3e9a74-0f3c-4c1a-9d55-0a8e7f2b6c11 --json
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires one event id")
			}
			return nil
		},
		ValidArgsFunction: eventIDCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := withApp(func(a *app.App) error {
				s := show.Show{App: a, ID: args[0], JSON: output.JSON}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
