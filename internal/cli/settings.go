package cli

import (
	"fmt"
)

type SettingsCmd struct {
	Get SettingsGetCmd `cmd:"" help:"Show current settings." default:"1"`
	Set SettingsSetCmd `cmd:"" help:"Update settings."`
}

type SettingsGetCmd struct{}

func (c *SettingsGetCmd) Run(ctx *Context) error {
	s := ctx.Tracker.Settings()
	fmt.Printf("daily-goal:    %.1f L\n", s.DailyGoal)
	fmt.Printf("glass-size:    %d ml\n", s.GlassSize)
	fmt.Printf("reminder-time: %s\n", s.ReminderTime)
	fmt.Printf("theme:         %s\n", s.Theme)
	return nil
}

type SettingsSetCmd struct {
	DailyGoal    float64 `help:"Daily water goal in liters (1-5)." default:"-1"`
	GlassSize    int     `help:"Glass size in milliliters (100-500)." default:"-1"`
	ReminderTime string  `help:"Probiotic reminder time (HH:MM)." default:""`
	Theme        string  `help:"UI theme: light or dark." default:""`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	s := ctx.Tracker.Settings()

	if c.DailyGoal >= 0 {
		s.DailyGoal = c.DailyGoal
	}
	if c.GlassSize >= 0 {
		s.GlassSize = c.GlassSize
	}
	if c.ReminderTime != "" {
		s.ReminderTime = c.ReminderTime
	}
	if c.Theme != "" {
		s.Theme = c.Theme
	}

	if err := ctx.Tracker.UpdateSettings(s); err != nil {
		return err
	}
	ctx.Tracker.Flush()

	fmt.Println("Settings updated.")
	return nil
}
