package tracker

import (
	"fmt"

	"droplet/internal/constants"
	"droplet/internal/models"
	"droplet/internal/utils"
)

// Settings are the user-tunable configuration fields of the record.
type Settings struct {
	DailyGoal    float64 `json:"daily_goal"` // liters
	GlassSize    int     `json:"glass_size"` // milliliters
	ReminderTime string  `json:"reminder_time"`
	Theme        string  `json:"theme"`
}

// Validate rejects out-of-range configuration. A non-positive daily goal is
// never stored, so no mutator can divide by zero.
func (s Settings) Validate() error {
	if s.DailyGoal < constants.MinDailyGoalLiters || s.DailyGoal > constants.MaxDailyGoalLiters {
		return fmt.Errorf("daily goal must be between %.1f and %.1f liters", constants.MinDailyGoalLiters, constants.MaxDailyGoalLiters)
	}
	if s.GlassSize < constants.MinGlassSizeML || s.GlassSize > constants.MaxGlassSizeML {
		return fmt.Errorf("glass size must be between %d and %d ml", constants.MinGlassSizeML, constants.MaxGlassSizeML)
	}
	if !utils.ValidateClockFormat(s.ReminderTime) {
		return fmt.Errorf("invalid reminder time %q (expected HH:MM)", s.ReminderTime)
	}
	if s.Theme != "light" && s.Theme != "dark" {
		return fmt.Errorf("invalid theme %q (expected light or dark)", s.Theme)
	}
	return nil
}

// Settings returns the current configuration fields.
func (t *Tracker) Settings() Settings {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.checkNewDayLocked()

	return Settings{
		DailyGoal:    t.rec.DailyGoal,
		GlassSize:    t.rec.GlassSize,
		ReminderTime: t.rec.ReminderTime,
		Theme:        t.rec.Theme,
	}
}

// UpdateSettings validates and applies new configuration.
func (t *Tracker) UpdateSettings(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.checkNewDayLocked()

	t.rec.DailyGoal = s.DailyGoal
	t.rec.GlassSize = s.GlassSize
	t.rec.ReminderTime = s.ReminderTime
	t.rec.Theme = s.Theme

	t.saver.schedule(t.rec)
	return nil
}

// Reset clears all tracking state while preserving configuration. The
// record reopens on today with no intake, streak, achievements, medications,
// or history.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	fresh := models.DefaultRecord(utils.Today(t.now()))
	fresh.DailyGoal = t.rec.DailyGoal
	fresh.GlassSize = t.rec.GlassSize
	fresh.ReminderTime = t.rec.ReminderTime
	fresh.Theme = t.rec.Theme
	t.rec = fresh

	t.saver.schedule(t.rec)
}
