// Package tracker implements the tracking engine: the day-rollover state
// machine, the intake and adherence mutators, and achievement unlocking. All
// state lives in a single TrackingRecord owned by the Tracker; every mutation
// goes through a Tracker method and is written through to storage.
package tracker

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"droplet/internal/constants"
	"droplet/internal/logger"
	"droplet/internal/models"
	"droplet/internal/storage"
	"droplet/internal/toast"
	"droplet/internal/utils"
)

// AdherenceMode selects which medication-tracking variant the tracker runs:
// a single probiotic flag or a full medication list. The mode is fixed at
// construction.
type AdherenceMode int

const (
	ModeSingleFlag AdherenceMode = iota
	ModeMedicationList
)

// Tracker owns the tracking record and applies all mutations to it.
type Tracker struct {
	mu     sync.Mutex
	store  storage.Provider
	rec    *models.TrackingRecord
	toasts *toast.Slot
	mode   AdherenceMode
	now    func() time.Time
	saver  *saver
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the time source. Used by tests and by callers that
// need deterministic day boundaries.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithMode selects the adherence variant.
func WithMode(mode AdherenceMode) Option {
	return func(t *Tracker) { t.mode = mode }
}

// WithSaveDebounce delays persistence writes by d, coalescing bursts of
// mutations into one write. Zero means every mutation saves immediately.
func WithSaveDebounce(d time.Duration) Option {
	return func(t *Tracker) { t.saver.delay = d }
}

// New loads the record from the store and returns a tracker for it. The
// rollover check runs immediately so no caller ever observes a stale day.
func New(store storage.Provider, toasts *toast.Slot, opts ...Option) (*Tracker, error) {
	rec, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load tracking record: %w", err)
	}

	t := &Tracker{
		store:  store,
		rec:    rec,
		toasts: toasts,
		mode:   ModeMedicationList,
		now:    time.Now,
	}
	t.saver = newSaver(store)
	for _, opt := range opts {
		opt(t)
	}

	t.mu.Lock()
	if t.checkNewDayLocked() {
		t.saver.schedule(t.rec)
	}
	t.mu.Unlock()

	return t, nil
}

// Mode returns the adherence variant the tracker was constructed with.
func (t *Tracker) Mode() AdherenceMode {
	return t.mode
}

// Record returns a deep copy of the current record, safe to hand to
// renderers. The rollover check runs first.
func (t *Tracker) Record() models.TrackingRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.checkNewDayLocked()

	cp, ok := copyRecord(t.rec)
	if !ok {
		return *t.rec
	}
	return *cp
}

// CheckNewDay runs the rollover transition. It is idempotent within a
// calendar day and is also invoked by every mutator, so explicit calls are
// only needed to force the check without mutating anything else.
func (t *Tracker) CheckNewDay() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.checkNewDayLocked() {
		t.saver.schedule(t.rec)
	}
}

// checkNewDayLocked archives the outgoing day, applies streak logic, and
// resets daily counters when the calendar day has changed. Reports whether a
// rollover happened.
func (t *Tracker) checkNewDayLocked() bool {
	today := utils.Today(t.now())
	if t.rec.LastDate == today {
		return false
	}

	logger.Info("Day rollover", "from", t.rec.LastDate, "to", today)

	// Archive the outgoing day if it saw any activity.
	if t.hadActivityLocked() {
		snapshot := t.snapshotDayLocked()
		upsertHistory(t.rec, snapshot)
	}

	// Streak: the outgoing day either extends it or breaks it.
	if t.rec.WaterIntake >= t.rec.DailyGoal {
		t.rec.Streak++
		t.unlockStreakMilestonesLocked()
	} else if t.rec.Streak > 0 {
		t.rec.Streak = 0
	}

	// Open the new day.
	t.rec.WaterIntake = 0
	t.rec.ProbioticTaken = false
	t.rec.LastDate = today

	return true
}

// hadActivityLocked reports whether the open day has anything worth
// archiving: water logged, the probiotic taken, or any medication dose.
func (t *Tracker) hadActivityLocked() bool {
	if t.rec.WaterIntake > 0 || t.rec.ProbioticTaken {
		return true
	}
	if day := findDay(t.rec, t.rec.LastDate); day != nil {
		for _, ms := range day.MedicationsTaken {
			if len(ms.TimesTaken) > 0 {
				return true
			}
		}
	}
	return false
}

// snapshotDayLocked builds the DayRecord for the open day, preserving any
// medication doses already recorded against it.
func (t *Tracker) snapshotDayLocked() models.DayRecord {
	snapshot := models.DayRecord{
		Date:           t.rec.LastDate,
		WaterIntake:    t.rec.WaterIntake,
		GoalMet:        t.rec.WaterIntake >= t.rec.DailyGoal,
		ProbioticTaken: t.rec.ProbioticTaken,
	}
	if day := findDay(t.rec, t.rec.LastDate); day != nil {
		snapshot.MedicationsTaken = day.MedicationsTaken
	}
	return snapshot
}

func (t *Tracker) unlockStreakMilestonesLocked() {
	for _, m := range constants.StreakMilestones {
		if t.rec.Streak < m {
			break
		}
		id := fmt.Sprintf("streak_%d", m)
		if t.unlockLocked(id) {
			t.toasts.Show(fmt.Sprintf("Achievement unlocked: %d Day Streak! 🔥", m), toast.TypeAchievement)
		}
	}
}

// unlockLocked adds the achievement id if not already held. Achievements are
// monotonic: nothing ever removes one.
func (t *Tracker) unlockLocked(id string) bool {
	if t.rec.HasAchievement(id) {
		return false
	}
	t.rec.Achievements = append(t.rec.Achievements, id)
	logger.Info("Achievement unlocked", "id", id)
	return true
}

// Flush forces any pending debounced write to disk. Call before exit.
func (t *Tracker) Flush() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.saver.flush(t.rec)
}

// findDay returns a pointer into the record's history for the given date, or nil.
func findDay(rec *models.TrackingRecord, date string) *models.DayRecord {
	for i := range rec.History {
		if rec.History[i].Date == date {
			return &rec.History[i]
		}
	}
	return nil
}

// upsertHistory replaces or appends the day entry for its date, then re-sorts
// descending by date and truncates to the history cap. Dates are unique.
func upsertHistory(rec *models.TrackingRecord, day models.DayRecord) {
	if existing := findDay(rec, day.Date); existing != nil {
		*existing = day
	} else {
		rec.History = append(rec.History, day)
	}

	// YYYY-MM-DD sorts lexically in date order.
	sort.Slice(rec.History, func(i, j int) bool {
		return rec.History[i].Date > rec.History[j].Date
	})
	if len(rec.History) > constants.HistoryLimit {
		rec.History = rec.History[:constants.HistoryLimit]
	}
}
