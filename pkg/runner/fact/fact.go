package fact

import (
	"context"
	"io"

	"tableflip.dev/matchday/pkg/app"
	"tableflip.dev/matchday/pkg/event"
	"tableflip.dev/matchday/pkg/printers"
	"tableflip.dev/matchday/pkg/thematic"
)

type Fact struct {
	App *app.App
	// Next advances the rotation instead of showing the item of the day.
	Next bool
	// On shows the item of that day instead of today.
	On event.Date
	// Category picks any item of the category, outside the rotation.
	Category string
	// Categories lists the categories in the pool.
	Categories bool
	JSON       bool
	Out        io.Writer
}

func (n *Fact) Do(ctx context.Context) error {
	pp := printers.New(n.Out)

	if n.Categories {
		cats := n.App.Categories()
		if err := n.App.ContentErr(); err != nil {
			return err
		}
		if n.JSON {
			return pp.JSON(cats)
		}
		for _, c := range cats {
			pp.Line(c)
		}
		return nil
	}

	var (
		it  thematic.Item
		err error
	)
	switch {
	case n.Category != "":
		it, err = n.App.FactFrom(n.Category)
	case n.Next:
		it, err = n.App.NextFact()
	case !n.On.IsZero():
		it, err = n.App.FactOn(n.On)
	default:
		it, err = n.App.Fact()
	}
	if err != nil {
		return err
	}
	if n.JSON {
		return pp.JSON(it)
	}
	pp.Fact(it)
	return nil
}
