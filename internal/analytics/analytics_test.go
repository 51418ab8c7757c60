package analytics

import (
	"testing"
	"time"

	"droplet/internal/models"
	"droplet/internal/utils"
)

func day(now time.Time, offset int, intake float64, goalMet bool) models.DayRecord {
	return models.DayRecord{
		Date:        utils.Today(now.AddDate(0, 0, offset)),
		WaterIntake: intake,
		GoalMet:     goalMet,
	}
}

func testRecord(now time.Time, history ...models.DayRecord) *models.TrackingRecord {
	return &models.TrackingRecord{
		WaterIntake: 1.5,
		DailyGoal:   2.0,
		GlassSize:   250,
		LastDate:    utils.Today(now),
		History:     history,
	}
}

func TestCombinedDeduplicatesToday(t *testing.T) {
	now := time.Date(2025, 3, 12, 12, 0, 0, 0, time.Local)

	// A stale history entry for today must be overridden by live fields.
	stale := day(now, 0, 0.25, false)
	stale.MedicationsTaken = []models.MedicationStatus{{MedicationID: "m1", TimesTaken: []string{"09:00"}, Completed: true}}
	rec := testRecord(now, stale, day(now, -1, 2.0, true))

	combined := Combined(rec)
	if len(combined) != 2 {
		t.Fatalf("expected 2 combined entries, got %d", len(combined))
	}
	if combined[0].Date != rec.LastDate {
		t.Errorf("expected newest first, got %s", combined[0].Date)
	}
	if combined[0].WaterIntake != 1.5 {
		t.Errorf("expected live intake 1.5, got %v", combined[0].WaterIntake)
	}
	// Doses recorded against today survive the override.
	if len(combined[0].MedicationsTaken) != 1 {
		t.Error("expected today's medication doses preserved")
	}
}

func TestLast7DaysShapeAndFill(t *testing.T) {
	now := time.Date(2025, 3, 12, 12, 0, 0, 0, time.Local)
	rec := testRecord(now, day(now, -2, 2.5, true))

	days := Last7Days(rec, now)
	if len(days) != 7 {
		t.Fatalf("expected exactly 7 days, got %d", len(days))
	}
	if days[0].Date != utils.Today(now.AddDate(0, 0, -6)) {
		t.Errorf("expected oldest first, got %s", days[0].Date)
	}
	if days[6].Date != utils.Today(now) {
		t.Errorf("expected today last, got %s", days[6].Date)
	}

	// Day -2 is filled from history, day -5 is zero-filled.
	if days[4].WaterIntake != 2.5 || !days[4].GoalMet {
		t.Errorf("expected day -2 filled from history, got %+v", days[4])
	}
	if days[1].WaterIntake != 0 || days[1].GoalMet {
		t.Errorf("expected day -5 zero-filled, got %+v", days[1])
	}

	// Today comes from live fields.
	if days[6].WaterIntake != 1.5 {
		t.Errorf("expected today's intake 1.5, got %v", days[6].WaterIntake)
	}
}

func TestWeeklyBuckets(t *testing.T) {
	// Wednesday 2025-03-12; current week starts Sunday 2025-03-09.
	now := time.Date(2025, 3, 12, 12, 0, 0, 0, time.Local)
	rec := testRecord(now,
		day(now, -1, 2.0, true),  // current week
		day(now, -8, 1.0, false), // previous week (2025-03-04)
	)

	weeks := Weekly(rec, now)
	if len(weeks) != 2 {
		t.Fatalf("expected 2 non-empty weeks, got %d", len(weeks))
	}

	// Oldest first.
	if weeks[0].WeekStart != "2025-03-02" {
		t.Errorf("expected first bucket week of 2025-03-02, got %s", weeks[0].WeekStart)
	}
	if weeks[1].WeekStart != "2025-03-09" {
		t.Errorf("expected second bucket week of 2025-03-09, got %s", weeks[1].WeekStart)
	}

	prev := weeks[0]
	if prev.TotalDays != 1 || prev.TotalWater != 1.0 || prev.GoalMetDays != 0 {
		t.Errorf("unexpected previous week stats: %+v", prev)
	}

	cur := weeks[1]
	if cur.TotalDays != 2 { // yesterday + today
		t.Fatalf("expected 2 days in current week, got %d", cur.TotalDays)
	}
	if cur.TotalWater != 3.5 {
		t.Errorf("expected 3.5 L total, got %v", cur.TotalWater)
	}
	if cur.AverageDaily != 1.75 {
		t.Errorf("expected 1.75 L/day, got %v", cur.AverageDaily)
	}
	if cur.GoalMetDays != 1 {
		t.Errorf("expected 1 goal-met day, got %d", cur.GoalMetDays)
	}
}

func TestMonthlyBestStreak(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)
	rec := testRecord(now,
		day(now, -5, 2.0, true),  // 03-10
		day(now, -4, 2.0, true),  // 03-11
		day(now, -3, 0.5, false), // 03-12
		day(now, -2, 2.0, true),  // 03-13
		day(now, -30, 2.0, true), // 02-13, previous month
	)

	months := Monthly(rec, now)
	if len(months) != 2 {
		t.Fatalf("expected 2 non-empty months, got %d", len(months))
	}

	feb, mar := months[0], months[1]
	if feb.Month != "February" || feb.TotalDays != 1 {
		t.Errorf("unexpected february stats: %+v", feb)
	}
	if mar.Month != "March" || mar.Year != 2025 {
		t.Errorf("unexpected march identity: %+v", mar)
	}

	// 03-10, 03-11 met; 03-12 missed; 03-13 met; today (1.5) missed.
	if mar.BestStreak != 2 {
		t.Errorf("expected best streak 2, got %d", mar.BestStreak)
	}
	if mar.GoalMetDays != 3 {
		t.Errorf("expected 3 goal-met days, got %d", mar.GoalMetDays)
	}
}

func TestOverallStats(t *testing.T) {
	now := time.Date(2025, 3, 12, 12, 0, 0, 0, time.Local)
	rec := testRecord(now,
		day(now, -1, 2.0, true),
		day(now, -2, 1.0, false),
	)
	rec.Streak = 4

	stats := Overall(rec)
	if stats.TotalDays != 3 { // two history days + today
		t.Fatalf("expected 3 days, got %d", stats.TotalDays)
	}
	if stats.TotalWaterConsumed != 4.5 {
		t.Errorf("expected 4.5 L total, got %v", stats.TotalWaterConsumed)
	}
	if stats.AverageDaily != 1.5 {
		t.Errorf("expected 1.5 L/day, got %v", stats.AverageDaily)
	}
	if stats.GoalMetPercentage != 33 {
		t.Errorf("expected 33%% goal met, got %v", stats.GoalMetPercentage)
	}
	if stats.CurrentStreak != 4 {
		t.Errorf("expected current streak 4, got %d", stats.CurrentStreak)
	}
}

func TestOverallStatsFreshRecord(t *testing.T) {
	now := time.Date(2025, 3, 12, 12, 0, 0, 0, time.Local)
	rec := models.DefaultRecord(utils.Today(now))

	stats := Overall(rec)
	// A fresh record still synthesizes today, with all-zero values.
	if stats.TotalDays != 1 {
		t.Fatalf("expected 1 day, got %d", stats.TotalDays)
	}
	if stats.TotalWaterConsumed != 0 || stats.AverageDaily != 0 || stats.GoalMetPercentage != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestMedicationComplianceCounting(t *testing.T) {
	now := time.Date(2025, 3, 12, 12, 0, 0, 0, time.Local)

	completed := day(now, -1, 1.0, false)
	completed.MedicationsTaken = []models.MedicationStatus{{MedicationID: "m1", TimesTaken: []string{"09:00"}, Completed: true}}

	partial := day(now, -2, 1.0, false)
	partial.MedicationsTaken = []models.MedicationStatus{{MedicationID: "m1", TimesTaken: []string{"09:00"}, Completed: false}}

	flagged := day(now, -3, 1.0, false)
	flagged.ProbioticTaken = true

	rec := testRecord(now, completed, partial, flagged)

	stats := Overall(rec)
	// completed + flagged count; partial and today do not.
	if stats.MedicationCompliance != 50 {
		t.Errorf("expected 50%% compliance, got %v", stats.MedicationCompliance)
	}
}
