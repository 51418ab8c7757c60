package tracker

import (
	"testing"
)

func TestUpdateSettingsRejectsBadValues(t *testing.T) {
	trk, _ := setupTestTracker(t)

	cases := []struct {
		name string
		s    Settings
	}{
		{"zero goal", Settings{DailyGoal: 0, GlassSize: 250, ReminderTime: "09:00", Theme: "light"}},
		{"negative goal", Settings{DailyGoal: -1, GlassSize: 250, ReminderTime: "09:00", Theme: "light"}},
		{"goal too high", Settings{DailyGoal: 9, GlassSize: 250, ReminderTime: "09:00", Theme: "light"}},
		{"glass too small", Settings{DailyGoal: 2, GlassSize: 50, ReminderTime: "09:00", Theme: "light"}},
		{"glass too big", Settings{DailyGoal: 2, GlassSize: 900, ReminderTime: "09:00", Theme: "light"}},
		{"bad reminder", Settings{DailyGoal: 2, GlassSize: 250, ReminderTime: "25:99", Theme: "light"}},
		{"bad theme", Settings{DailyGoal: 2, GlassSize: 250, ReminderTime: "09:00", Theme: "sepia"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := trk.UpdateSettings(tc.s); err == nil {
				t.Errorf("expected %s to be rejected", tc.name)
			}
		})
	}

	// The stored goal is untouched, so no mutator can ever divide by zero.
	if got := trk.Record().DailyGoal; got != 2.0 {
		t.Errorf("expected goal unchanged at 2.0, got %v", got)
	}
}

func TestUpdateSettingsAppliesValidValues(t *testing.T) {
	trk, _ := setupTestTracker(t)

	s := Settings{DailyGoal: 3.0, GlassSize: 330, ReminderTime: "08:30", Theme: "dark"}
	if err := trk.UpdateSettings(s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := trk.Settings()
	if got != s {
		t.Errorf("expected %+v, got %+v", s, got)
	}
}

func TestResetPreservesConfiguration(t *testing.T) {
	trk, _ := setupTestTracker(t)

	if err := trk.UpdateSettings(Settings{DailyGoal: 3.0, GlassSize: 330, ReminderTime: "08:30", Theme: "dark"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 4; i++ {
		trk.AddWater()
	}
	addTestMedication(t, trk, "09:00")

	trk.Reset()

	rec := trk.Record()
	if rec.WaterIntake != 0 || rec.Streak != 0 {
		t.Error("expected intake and streak cleared")
	}
	if len(rec.Achievements) != 0 || len(rec.History) != 0 || len(rec.Medications) != 0 {
		t.Error("expected achievements, history, and medications cleared")
	}
	if rec.DailyGoal != 3.0 || rec.GlassSize != 330 || rec.ReminderTime != "08:30" || rec.Theme != "dark" {
		t.Errorf("expected configuration preserved, got %+v", trk.Settings())
	}
}
