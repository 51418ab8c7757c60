package cli

import "droplet/internal/tui"

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	defer ctx.Tracker.Flush()
	return tui.Run(ctx.Tracker, ctx.Toasts)
}
