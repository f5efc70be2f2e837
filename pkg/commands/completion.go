package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(matchday completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(matchday completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletionV2(os.Stdout, true)
		},
	}

	topLevel.AddCommand(cmd)
}

// complete lists candidates from the store without printing errors; a
// broken store simply offers nothing.
func complete(fn func(a *app.App) []string, toComplete string) []string {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil
	}
	s, err := store.Open(cfg)
	if err != nil {
		return nil
	}
	a := &app.App{Config: cfg, Events: s}
	var out []string
	for _, c := range fn(a) {
		if strings.HasPrefix(c, toComplete) {
			out = append(out, c)
		}
	}
	return out
}

func eventIDCompletions(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return complete(func(a *app.App) []string {
		var ids []string
		for _, e := range a.Events.List(store.Filter{}) {
			ids = append(ids, e.ID+"\t"+e.String())
		}
		return ids
	}, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// registerCompletions offers the types and tags in use for --type and
// --tags.
func registerCompletions(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("type", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return complete(func(a *app.App) []string { return a.Events.Types() }, toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("tags", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		prefix := ""
		if i := strings.LastIndex(toComplete, ","); i >= 0 {
			prefix, toComplete = toComplete[:i+1], toComplete[i+1:]
		}
		tags := complete(func(a *app.App) []string { return a.Events.Tags() }, toComplete)
		for i := range tags {
			tags[i] = prefix + tags[i]
		}
		return tags, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	})
}
