package options

import (
	"github.com/spf13/cobra"
)

// GlobalOptions apply to every command.
type GlobalOptions struct {
	Verbose      bool
	ResetCorrupt bool
}

func AddGlobalArgs(cmd *cobra.Command, o *GlobalOptions) {
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log what is going on to stderr.")
	cmd.PersistentFlags().BoolVar(&o.ResetCorrupt, "reset-corrupt", false,
		"Move an unreadable events file aside and start with an empty calendar.")
}
