package tui

import (
	"fmt"
	"strings"

	"droplet/internal/tracker"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	rec := m.tracker.Record()

	var b strings.Builder
	b.WriteString(titleStyle.Render("💧 droplet"))
	b.WriteString("\n\n")

	ratio := 0.0
	if rec.DailyGoal > 0 {
		ratio = rec.WaterIntake / rec.DailyGoal
	}
	if ratio > 1 {
		ratio = 1
	}
	b.WriteString(m.progress.ViewAs(ratio))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%.2f / %.1f L", rec.WaterIntake, rec.DailyGoal))
	if rec.WaterIntake >= rec.DailyGoal {
		b.WriteString("  " + goalMetStyle.Render("goal met!"))
	}
	b.WriteString("\n\n")

	if rec.Streak > 0 {
		b.WriteString(streakStyle.Render(fmt.Sprintf("🔥 %d day streak", rec.Streak)))
		b.WriteString("\n")
	}

	if m.tracker.Mode() == tracker.ModeSingleFlag {
		mark := "✗"
		if rec.ProbioticTaken {
			mark = "✓"
		}
		b.WriteString(fmt.Sprintf("Probiotic: %s\n", mark))
	} else {
		for _, med := range rec.Medications {
			if !med.Active {
				continue
			}
			status := m.tracker.TodayStatus(med.ID)
			mark := " "
			if status.Completed {
				mark = "✓"
			}
			b.WriteString(fmt.Sprintf("[%s] %s %d/%d doses\n", mark, med.Name, len(status.TimesTaken), med.RequiredDoses()))
		}
	}

	b.WriteString("\n")
	if t := m.toasts.Current(); t != nil {
		b.WriteString(toastStyle.Render(t.Message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))

	return docStyle.Render(b.String())
}
