package cli

import (
	"fmt"
)

type WaterCmd struct {
	Add    WaterAddCmd    `cmd:"" help:"Log a glass of water."`
	Sub    WaterSubCmd    `cmd:"" help:"Remove the last glass of water."`
	Status WaterStatusCmd `cmd:"" help:"Show today's intake." default:"1"`
}

type WaterAddCmd struct {
	Glasses int `help:"Number of glasses to log." short:"n" default:"1"`
}

func (c *WaterAddCmd) Run(ctx *Context) error {
	if c.Glasses < 1 {
		return fmt.Errorf("glasses must be at least 1")
	}

	for i := 0; i < c.Glasses; i++ {
		ctx.Tracker.AddWater()
	}

	rec := ctx.Tracker.Record()
	fmt.Printf("Water logged: %s\n", FormatIntake(rec.WaterIntake, rec.DailyGoal))
	ctx.FlushAndPrintToast()
	return nil
}

type WaterSubCmd struct{}

func (c *WaterSubCmd) Run(ctx *Context) error {
	ctx.Tracker.SubtractWater()

	rec := ctx.Tracker.Record()
	fmt.Printf("Water removed: %s\n", FormatIntake(rec.WaterIntake, rec.DailyGoal))
	ctx.FlushAndPrintToast()
	return nil
}

type WaterStatusCmd struct{}

func (c *WaterStatusCmd) Run(ctx *Context) error {
	rec := ctx.Tracker.Record()

	percentage := 0.0
	if rec.DailyGoal > 0 {
		percentage = rec.WaterIntake / rec.DailyGoal * 100
	}

	fmt.Printf("Today:  %s (%.0f%%)\n", FormatIntake(rec.WaterIntake, rec.DailyGoal), percentage)
	fmt.Printf("Streak: %d day(s)\n", rec.Streak)
	if rec.WaterIntake >= rec.DailyGoal {
		fmt.Println("Goal met! 🎉")
	}
	return nil
}
