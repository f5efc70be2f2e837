package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/apperr"
	"tableflip.dev/matchday/pkg/commands/options"
	"tableflip.dev/matchday/pkg/log"
	"tableflip.dev/matchday/pkg/store"
)

var (
	global = &options.GlobalOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "matchday",
		Short: options.Wrap80("Plan matches and training sessions on the command line."),
		Long: options.Wrap80("Record, browse and filter football matches, training sessions " +
			"and other dated events, see what is coming up and read the fact of the day. " +
			"Run without arguments on a terminal to open the board."),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if global.Verbose {
				log.SetLevel(log.LevelDebug)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive() {
				return runUI(cmd)
			}
			return cmd.Help()
		},
	}

	options.AddGlobalArgs(cmd, global)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addShow(topLevel)
	addList(topLevel)
	addUpcoming(topLevel)
	addFact(topLevel)
	addSettings(topLevel)
	addExport(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// interactive reports whether both ends of the terminal are a tty.
func interactive() bool {
	tty := func(f *os.File) bool {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return tty(os.Stdin) && tty(os.Stdout)
}

// openApp loads the configuration and the application context. The caller
// closes the returned app.
func openApp() (*app.App, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	a, err := app.Open(cfg, app.Options{ResetCorrupt: global.ResetCorrupt})
	if errors.Is(err, apperr.ErrCorruptStore) {
		return nil, fmt.Errorf("%w\nrerun with --reset-corrupt to move the file aside and start empty", err)
	}
	if err != nil {
		return nil, err
	}
	if b := a.Backup(); b != "" {
		fmt.Fprintf(os.Stderr, "unreadable events moved to %s\n", b)
	}
	return a, nil
}

// withApp runs fn against a freshly opened app and closes it afterwards.
func withApp(fn func(a *app.App) error) (err error) {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil {
			log.Error("close", cerr)
			if err == nil {
				err = cerr
			}
		}
	}()
	return fn(a)
}
