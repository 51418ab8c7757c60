package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

type ResetCmd struct {
	Force bool `help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if !c.Force {
		var confirmed bool
		err := huh.NewConfirm().
			Title("Reset all tracking data?").
			Description("History, streak, achievements, and medications will be cleared. Settings are kept.").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	ctx.Tracker.Reset()
	ctx.Tracker.Flush()
	fmt.Println("Tracking data reset. Settings preserved.")
	return nil
}
