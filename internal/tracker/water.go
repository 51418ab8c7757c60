package tracker

import (
	"fmt"
	"math"

	"droplet/internal/constants"
	"droplet/internal/toast"
)

// milestoneMessages maps intake milestone percentages to their toast text.
var milestoneMessages = map[int]string{
	25:  "Great start! Keep it flowing! 💧",
	50:  "Halfway there! You're doing amazing! 🌊",
	75:  "Almost there! The finish line is in sight! 🏁",
	100: "Congratulations! Goal achieved! 🎉",
}

// AddWater logs one glass of water against the open day. Intake is
// hard-capped one liter above the daily goal. Newly crossed intake
// milestones unlock in ascending order, each with its own toast, so the
// highest one crossed ends up visible. Time-of-day achievements are checked
// on every add.
func (t *Tracker) AddWater() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.checkNewDayLocked()

	glass := float64(t.rec.GlassSize) / 1000 // ml to liters
	t.rec.WaterIntake = math.Min(t.rec.WaterIntake+glass, t.rec.DailyGoal+constants.IntakeOverflowLiters)

	percentage := t.rec.WaterIntake / t.rec.DailyGoal * 100
	for _, m := range constants.IntakeMilestones {
		if percentage < float64(m) {
			break
		}
		id := fmt.Sprintf("milestone_%d", m)
		if t.unlockLocked(id) {
			t.toasts.Show(milestoneMessages[m], toast.TypeSuccess)
		}
	}

	hour := t.now().Hour()
	if hour < constants.EarlyBirdBeforeHour && t.unlockLocked("early_bird") {
		t.toasts.Show("Achievement unlocked: Early Bird! 🌅", toast.TypeAchievement)
	}
	if hour >= constants.NightOwlFromHour && t.unlockLocked("night_owl") {
		t.toasts.Show("Achievement unlocked: Night Owl! 🦉", toast.TypeAchievement)
	}

	t.upsertTodayLocked()
	t.saver.schedule(t.rec)
}

// SubtractWater removes one glass from the open day, bottoming out at zero.
// Achievements are never revoked: they record that a level was ever reached.
func (t *Tracker) SubtractWater() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.checkNewDayLocked()

	glass := float64(t.rec.GlassSize) / 1000
	t.rec.WaterIntake = math.Max(t.rec.WaterIntake-glass, 0)

	t.upsertTodayLocked()
	t.saver.schedule(t.rec)
}

// upsertTodayLocked writes the open day's current intake into history so
// analytics sees live data for today.
func (t *Tracker) upsertTodayLocked() {
	upsertHistory(t.rec, t.snapshotDayLocked())
}
