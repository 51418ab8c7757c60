package tracker

import (
	"path/filepath"
	"testing"
	"time"

	"droplet/internal/models"
	"droplet/internal/storage"
	"droplet/internal/toast"
	"droplet/internal/utils"
)

// setupTestTracker returns a tracker backed by a temp JSON store with a
// controllable clock. Move the clock by reassigning *clock.
func storageForTest(t *testing.T) storage.Provider {
	t.Helper()
	return storage.NewJSONStore(filepath.Join(t.TempDir(), "droplet.json"))
}

func setupTestTracker(t *testing.T, opts ...Option) (*Tracker, *time.Time) {
	t.Helper()

	store := storageForTest(t)
	clock := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)

	opts = append([]Option{WithClock(func() time.Time { return clock })}, opts...)
	trk, err := New(store, toast.NewSlot(), opts...)
	if err != nil {
		t.Fatalf("failed to create tracker: %v", err)
	}
	return trk, &clock
}

func TestRolloverAtLoadIsPersisted(t *testing.T) {
	store := storageForTest(t)
	stale := models.DefaultRecord("2025-03-09")
	stale.WaterIntake = 2.0 // goal met on the stale day
	if err := store.Save(stale); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	clock := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	if _, err := New(store, toast.NewSlot(), WithClock(func() time.Time { return clock })); err != nil {
		t.Fatalf("failed to create tracker: %v", err)
	}

	// No mutation and no flush: the load-time rollover alone must have
	// written through, so a read-only session does not redo it next launch.
	saved, err := store.Load()
	if err != nil {
		t.Fatalf("failed to reload store: %v", err)
	}
	if saved.LastDate != "2025-03-10" {
		t.Errorf("expected persisted lastDate 2025-03-10, got %s", saved.LastDate)
	}
	if saved.Streak != 1 {
		t.Errorf("expected persisted streak 1, got %d", saved.Streak)
	}
	if findDayIn(saved.History, "2025-03-09") == nil {
		t.Error("expected persisted history entry for 2025-03-09")
	}
}

func TestCheckNewDayIdempotent(t *testing.T) {
	trk, _ := setupTestTracker(t)
	trk.AddWater()

	before := trk.Record()
	trk.CheckNewDay()
	trk.CheckNewDay()
	after := trk.Record()

	if before.LastDate != after.LastDate {
		t.Errorf("expected lastDate %s, got %s", before.LastDate, after.LastDate)
	}
	if before.WaterIntake != after.WaterIntake {
		t.Errorf("expected intake unchanged at %v, got %v", before.WaterIntake, after.WaterIntake)
	}
	if len(before.History) != len(after.History) {
		t.Errorf("expected history unchanged at %d entries, got %d", len(before.History), len(after.History))
	}
}

func TestRolloverArchivesAndResets(t *testing.T) {
	trk, clock := setupTestTracker(t)
	yesterday := utils.Today(*clock)

	trk.AddWater() // 0.25 L of activity

	*clock = clock.AddDate(0, 0, 1)
	trk.CheckNewDay()

	rec := trk.Record()
	if rec.WaterIntake != 0 {
		t.Errorf("expected intake reset to 0, got %v", rec.WaterIntake)
	}
	if rec.LastDate != utils.Today(*clock) {
		t.Errorf("expected lastDate %s, got %s", utils.Today(*clock), rec.LastDate)
	}

	day := findDayIn(rec.History, yesterday)
	if day == nil {
		t.Fatalf("expected history entry for %s", yesterday)
	}
	if day.WaterIntake != 0.25 {
		t.Errorf("expected archived intake 0.25, got %v", day.WaterIntake)
	}
	if day.GoalMet {
		t.Error("expected goalMet=false for 0.25/2.0")
	}
}

func TestRolloverWithoutActivitySkipsArchive(t *testing.T) {
	trk, clock := setupTestTracker(t)
	start := utils.Today(*clock)

	*clock = clock.AddDate(0, 0, 1)
	trk.CheckNewDay()

	rec := trk.Record()
	if findDayIn(rec.History, start) != nil {
		t.Error("expected no archive for a day with no activity")
	}
}

func TestStreakIncrementsAndUnlocks(t *testing.T) {
	trk, clock := setupTestTracker(t)

	trk.mu.Lock()
	trk.rec.Streak = 2
	trk.rec.WaterIntake = trk.rec.DailyGoal // goal met yesterday
	trk.mu.Unlock()

	*clock = clock.AddDate(0, 0, 1)
	trk.CheckNewDay()

	rec := trk.Record()
	if rec.Streak != 3 {
		t.Errorf("expected streak 3, got %d", rec.Streak)
	}
	if !rec.HasAchievement("streak_3") {
		t.Error("expected streak_3 unlocked")
	}
	if rec.HasAchievement("streak_7") {
		t.Error("streak_7 should not be unlocked at streak 3")
	}
}

func TestStreakResetsOnMiss(t *testing.T) {
	trk, clock := setupTestTracker(t)

	trk.mu.Lock()
	trk.rec.Streak = 5
	trk.rec.WaterIntake = 0.5 // goal missed
	trk.mu.Unlock()

	*clock = clock.AddDate(0, 0, 1)
	trk.CheckNewDay()

	rec := trk.Record()
	if rec.Streak != 0 {
		t.Errorf("expected streak reset to 0, got %d", rec.Streak)
	}
	for _, a := range rec.Achievements {
		if a == "streak_3" || a == "streak_7" {
			t.Errorf("unexpected achievement %s after a miss", a)
		}
	}
}

func TestStreakMilestoneUnlocksOnlyOnce(t *testing.T) {
	trk, clock := setupTestTracker(t)

	// Two consecutive goal-met rollovers from streak 2: 3 then 4.
	trk.mu.Lock()
	trk.rec.Streak = 2
	trk.rec.WaterIntake = trk.rec.DailyGoal
	trk.mu.Unlock()

	*clock = clock.AddDate(0, 0, 1)
	trk.CheckNewDay()

	trk.mu.Lock()
	trk.rec.WaterIntake = trk.rec.DailyGoal
	trk.mu.Unlock()

	*clock = clock.AddDate(0, 0, 1)
	trk.CheckNewDay()

	rec := trk.Record()
	if rec.Streak != 4 {
		t.Fatalf("expected streak 4, got %d", rec.Streak)
	}
	count := 0
	for _, a := range rec.Achievements {
		if a == "streak_3" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected streak_3 exactly once, got %d", count)
	}
}

func TestHistoryCapAndUniqueDates(t *testing.T) {
	trk, clock := setupTestTracker(t)

	trk.mu.Lock()
	for i := 1; i <= 95; i++ {
		trk.rec.History = append(trk.rec.History, models.DayRecord{
			Date:        utils.Today(clock.AddDate(0, 0, -i)),
			WaterIntake: 1.0,
		})
	}
	trk.rec.WaterIntake = 2.0
	trk.mu.Unlock()

	*clock = clock.AddDate(0, 0, 1)
	trk.CheckNewDay()

	rec := trk.Record()
	if len(rec.History) > 90 {
		t.Errorf("expected history capped at 90, got %d", len(rec.History))
	}

	seen := make(map[string]bool)
	for _, day := range rec.History {
		if seen[day.Date] {
			t.Errorf("duplicate history date %s", day.Date)
		}
		seen[day.Date] = true
	}

	// Descending order.
	for i := 1; i < len(rec.History); i++ {
		if rec.History[i-1].Date < rec.History[i].Date {
			t.Fatalf("history out of order at %d: %s < %s", i, rec.History[i-1].Date, rec.History[i].Date)
		}
	}
}

func TestRolloverPreservesMedicationDosesInArchive(t *testing.T) {
	trk, clock := setupTestTracker(t)
	day1 := utils.Today(*clock)

	id := trk.AddMedication(models.Medication{Name: "GoodBug", Frequency: models.FrequencyOnce, Times: []string{"09:00"}, Active: true})
	trk.TakeMedication(id)

	*clock = clock.AddDate(0, 0, 1)
	trk.CheckNewDay()

	rec := trk.Record()
	archived := findDayIn(rec.History, day1)
	if archived == nil {
		t.Fatalf("expected archive for %s", day1)
	}
	status := archived.Status(id)
	if len(status.TimesTaken) != 1 || !status.Completed {
		t.Errorf("expected archived dose preserved, got %+v", status)
	}
}

func TestRecordIsACopy(t *testing.T) {
	trk, _ := setupTestTracker(t)
	trk.AddWater()

	rec := trk.Record()
	rec.WaterIntake = 99
	rec.Achievements = append(rec.Achievements, "bogus")

	fresh := trk.Record()
	if fresh.WaterIntake == 99 {
		t.Error("mutating the returned record must not affect tracker state")
	}
	if fresh.HasAchievement("bogus") {
		t.Error("mutating the returned achievements must not affect tracker state")
	}
}

func findDayIn(history []models.DayRecord, date string) *models.DayRecord {
	for i := range history {
		if history[i].Date == date {
			return &history[i]
		}
	}
	return nil
}
