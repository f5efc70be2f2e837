package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/commands/options"
	"tableflip.dev/matchday/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "rm <event id>...",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove events",
		Example: `
matchday rm 5b3e9a74-0f3c-4c1a-9d55-0a8e7f2b6c11
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an event id")
			}
			return nil
		},
		ValidArgsFunction: eventIDCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := withApp(func(a *app.App) error {
				s := remove.Remove{App: a, IDs: args}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
