package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/commands/options"
	"tableflip.dev/matchday/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	output := &options.OutputOptions{}
	var title string

	cmd := &cobra.Command{
		Use:   "edit <event id>",
		Short: "Change fields of an event",
		Example: `
matchday edit 5b3e9a74-0f3c-4c1a-9d55-0a8e7f2b6c11 --at=16:00
matchday edit 5b3e9a74-0f3c-4c1a-9d55-0a8e7f2b6c11 --title="Cup final" --tags=""
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
				eo.Title = strings.TrimSpace(title)
				p, err := eo.Patch(cmd, cmd.Flags().Changed("title"), a.Today())
				if err != nil {
					return err
				}
				s := edit.Edit{App: a, ID: args[0], Patch: p, JSON: output.JSON}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title.")
	options.AddEventArgs(cmd, eo)
	registerCompletions(cmd)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
