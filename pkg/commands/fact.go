package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/apperr"
	"tableflip.dev/matchday/pkg/commands/options"
	"tableflip.dev/matchday/pkg/runner/fact"
	"tableflip.dev/matchday/pkg/thematic"
)

func addFact(topLevel *cobra.Command) {
	output := &options.OutputOptions{}
	s := fact.Fact{}
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "fact",
		Aliases: []string{"tip"},
		Short:   "Show the fact of the day",
		Long: options.Wrap80("Show the fact of the day. --next moves on to another item; " +
			"items do not repeat until every item has been shown."),
		Example: `
matchday fact
matchday fact --next
matchday fact --category=rule
matchday fact --on=2024-12-25
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := withApp(func(a *app.App) error {
				day, ok, err := oo.GetOn(a.Today())
				if err != nil {
					return apperr.Validation("on", "%v", err)
				}
				if ok {
					s.On = day
				}
				s.App = a
				s.JSON = output.JSON
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	cmd.Flags().BoolVarP(&s.Next, "next", "n", false, "Show the next item of the rotation.")
	cmd.Flags().StringVar(&s.Category, "category", "", "Show an item of this category.")
	cmd.Flags().BoolVar(&s.Categories, "categories", false, "List the categories.")
	_ = cmd.RegisterFlagCompletionFunc("category", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{thematic.CategoryHistory, thematic.CategoryTip, thematic.CategoryFact, thematic.CategoryRule}, cobra.ShellCompDirectiveNoFileComp
	})
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
