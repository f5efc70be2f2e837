package settings

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/printers"
	"tableflip.dev/matchday/pkg/settings"
)

// Op is the settings operation to run.
type Op int

const (
	Get Op = iota
	Set
	Reset
)

type Settings struct {
	App   *app.App
	Op    Op
	Key   string
	Value string
	JSON  bool
	Out   io.Writer
	// ErrOut receives warnings so Out stays parseable; nil means stderr.
	ErrOut io.Writer
}

func (n *Settings) Do(ctx context.Context) error {
	pp := printers.New(n.Out)
	warn := n.ErrOut
	if warn == nil {
		warn = color.Error
	}

	var (
		s   settings.Settings
		err error
	)
	switch n.Op {
	case Get:
		s = n.App.Settings.Current()
		if err := n.App.SettingsErr(); err != nil {
			_, _ = color.New(color.FgYellow).Fprintf(warn, "%v; showing defaults\n", err)
		}
		if n.Key != "" {
			v, err := s.Get(n.Key)
			if err != nil {
				return err
			}
			if n.JSON {
				return pp.JSON(map[string]string{n.Key: v})
			}
			_, _ = fmt.Fprintln(pp.Out, v)
			return nil
		}
	case Set:
		p, perr := settings.ParsePartial(n.Key, n.Value)
		if perr != nil {
			return perr
		}
		if s, err = n.App.UpdateSettings(p); err != nil {
			return err
		}
		n.noteBackup(warn)
	case Reset:
		if s, err = n.App.ResetSettings(); err != nil {
			return err
		}
		n.noteBackup(warn)
	}

	if n.JSON {
		return pp.JSON(s)
	}
	pp.Settings(s)
	return nil
}

func (n *Settings) noteBackup(w io.Writer) {
	if b := n.App.Settings.Backup(); b != "" {
		_, _ = fmt.Fprintf(w, "unreadable settings moved to %s\n", b)
	}
}
