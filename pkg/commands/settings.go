package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/commands/options"
	runner "tableflip.dev/matchday/pkg/runner/settings"
	"tableflip.dev/matchday/pkg/settings"
)

func addSettings(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"config"},
		Short:   "Show or change preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSettings(runner.Settings{Op: runner.Get}, &options.OutputOptions{})
		},
	}

	addSettingsGet(cmd)
	addSettingsSet(cmd)
	addSettingsReset(cmd)
	topLevel.AddCommand(cmd)
}

func runSettings(s runner.Settings, output *options.OutputOptions) error {
	err := withApp(func(a *app.App) error {
		s.App = a
		s.JSON = output.JSON
		return s.Do(context.Background())
	})
	return output.HandleError(err)
}

func settingKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return settings.Keys(), cobra.ShellCompDirectiveNoFileComp
}

func addSettingsGet(topLevel *cobra.Command) {
	output := &options.OutputOptions{}
	cmd := &cobra.Command{
		Use:   "get [key]",
		Short: "Show all preferences or one of them",
		Example: `
matchday settings get
matchday settings get reminder_lookahead_days
`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: settingKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := runner.Settings{Op: runner.Get}
			if len(args) == 1 {
				s.Key = args[0]
			}
			return runSettings(s, output)
		},
	}
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addSettingsSet(topLevel *cobra.Command) {
	output := &options.OutputOptions{}
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a preference",
		Long: options.Wrap80("Colors accept #rgb, #rrggbb or a color name such as lightblue. " +
			"reminder_lookahead_days must be zero or more."),
		Example: `
matchday settings set calendar_event_day_bg "#ffcc00"
matchday settings set reminder_lookahead_days 7
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a key and a value")
			}
			return nil
		},
		ValidArgsFunction: settingKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSettings(runner.Settings{Op: runner.Set, Key: args[0], Value: args[1]}, output)
		},
	}
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addSettingsReset(topLevel *cobra.Command) {
	output := &options.OutputOptions{}
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSettings(runner.Settings{Op: runner.Reset}, output)
		},
	}
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
