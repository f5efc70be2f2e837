package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/commands/options"
	"tableflip.dev/matchday/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an event",
		Example: `
matchday add Derby against City --on=2024-05-18 --at=15:00 --type=match --tags=u15,league
matchday add Keeper training --on=tomorrow --type=training
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an event title")
			}
			eo.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := withApp(func(a *app.App) error {
				d, err := eo.Draft(a.Today())
				if err != nil {
					return err
				}
				s := add.Add{App: a, Draft: d, JSON: output.JSON}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}

	options.AddEventArgs(cmd, eo)
	registerCompletions(cmd)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
