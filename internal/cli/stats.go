package cli

import (
	"fmt"
	"strings"
	"time"

	"droplet/internal/analytics"
)

type StatsCmd struct {
	Weekly  bool `help:"Show weekly aggregates for the last 4 weeks."`
	Monthly bool `help:"Show monthly aggregates for the last 3 months."`
	Overall bool `help:"Show all-time aggregates."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	rec := ctx.Tracker.Record()
	now := time.Now()

	switch {
	case c.Weekly:
		weeks := analytics.Weekly(&rec, now)
		if len(weeks) == 0 {
			fmt.Println("No data yet.")
			return nil
		}
		for _, w := range weeks {
			fmt.Printf("Week of %s: %.2f L total, %.2f L/day, goal met %d/%d, medication %d/%d\n",
				w.WeekStart, w.TotalWater, w.AverageDaily, w.GoalMetDays, w.TotalDays, w.MedicationDays, w.TotalDays)
		}

	case c.Monthly:
		months := analytics.Monthly(&rec, now)
		if len(months) == 0 {
			fmt.Println("No data yet.")
			return nil
		}
		for _, m := range months {
			fmt.Printf("%s %d: %.2f L total, %.2f L/day, goal met %d/%d, best streak %d\n",
				m.Month, m.Year, m.TotalWater, m.AverageDaily, m.GoalMetDays, m.TotalDays, m.BestStreak)
		}

	case c.Overall:
		stats := analytics.Overall(&rec)
		fmt.Printf("Days tracked:      %d\n", stats.TotalDays)
		fmt.Printf("Total water:       %.2f L\n", stats.TotalWaterConsumed)
		fmt.Printf("Average daily:     %.2f L\n", stats.AverageDaily)
		fmt.Printf("Goal met:          %.0f%%\n", stats.GoalMetPercentage)
		fmt.Printf("Medication taken:  %.0f%%\n", stats.MedicationCompliance)
		fmt.Printf("Current streak:    %d day(s)\n", stats.CurrentStreak)

	default:
		days := analytics.Last7Days(&rec, now)
		for _, d := range days {
			bar := strings.Repeat("█", int(d.WaterIntake*4))
			met := " "
			if d.GoalMet {
				met = "✓"
			}
			fmt.Printf("%s %s  %5.2f L %s [%s]\n", d.Weekday, d.Date, d.WaterIntake, bar, met)
		}
	}

	return nil
}
