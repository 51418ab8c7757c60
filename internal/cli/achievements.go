package cli

import (
	"fmt"

	"droplet/internal/models"
)

type AchievementsCmd struct {
	All bool `help:"Include locked achievements."`
}

func (c *AchievementsCmd) Run(ctx *Context) error {
	rec := ctx.Tracker.Record()

	shown := 0
	for _, a := range models.Catalog {
		unlocked := rec.HasAchievement(a.ID)
		if !unlocked && !c.All {
			continue
		}
		marker := " "
		if unlocked {
			marker = "✓"
		}
		fmt.Printf("[%s] %s %s: %s\n", marker, a.Icon, a.Name, a.Description)
		shown++
	}

	if shown == 0 {
		fmt.Println("No achievements unlocked yet. Keep drinking!")
	}
	return nil
}
