package tracker

import (
	"fmt"

	"github.com/google/uuid"

	"droplet/internal/logger"
	"droplet/internal/models"
	"droplet/internal/toast"
	"droplet/internal/utils"
)

// ToggleProbiotic flips the single-flag adherence boolean. A success toast
// fires only on the false-to-true transition.
func (t *Tracker) ToggleProbiotic() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.checkNewDayLocked()

	t.rec.ProbioticTaken = !t.rec.ProbioticTaken
	if t.rec.ProbioticTaken {
		t.toasts.Show("Good job taking your GoodBug! 🦠✨", toast.TypeSuccess)
	}

	t.upsertTodayLocked()
	t.saver.schedule(t.rec)
}

// TakeMedication records a dose of the given medication at the current clock
// time. Unknown ids are a silent no-op.
func (t *Tracker) TakeMedication(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.checkNewDayLocked()

	med := t.rec.FindMedication(id)
	if med == nil {
		logger.Debug("Ignoring dose for unknown medication", "id", id)
		return
	}

	day := t.ensureTodayLocked()
	status := ensureStatus(day, id)
	status.TimesTaken = append(status.TimesTaken, utils.Clock(t.now()))
	status.Completed = len(status.TimesTaken) >= med.RequiredDoses()

	t.toasts.Show(fmt.Sprintf("%s taken! %d/%d doses today", med.Name, len(status.TimesTaken), med.RequiredDoses()), toast.TypeSuccess)
	t.saver.schedule(t.rec)
}

// RemoveMedicationDose removes the most recent dose of the given medication
// for today. No-op when the id is unknown or no dose was taken.
func (t *Tracker) RemoveMedicationDose(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.checkNewDayLocked()

	med := t.rec.FindMedication(id)
	if med == nil {
		return
	}

	day := findDay(t.rec, t.rec.LastDate)
	if day == nil {
		return
	}
	status := ensureStatus(day, id)
	if len(status.TimesTaken) == 0 {
		return
	}

	status.TimesTaken = status.TimesTaken[:len(status.TimesTaken)-1]
	status.Completed = len(status.TimesTaken) >= med.RequiredDoses()

	t.toasts.Show(fmt.Sprintf("%s dose removed. %d/%d doses today", med.Name, len(status.TimesTaken), med.RequiredDoses()), toast.TypeReminder)
	t.saver.schedule(t.rec)
}

// TodayStatus returns the dose status of the given medication for the open day.
func (t *Tracker) TodayStatus(id string) models.MedicationStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.checkNewDayLocked()

	if day := findDay(t.rec, t.rec.LastDate); day != nil {
		return day.Status(id)
	}
	return models.MedicationStatus{MedicationID: id, TimesTaken: []string{}}
}

// AddMedication adds med to the collection, assigning it a fresh id.
// Returns the assigned id.
func (t *Tracker) AddMedication(med models.Medication) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.checkNewDayLocked()

	med.ID = uuid.New().String()
	t.rec.Medications = append(t.rec.Medications, med)

	t.toasts.Show(fmt.Sprintf("%s added to your medications", med.Name), toast.TypeSuccess)
	t.saver.schedule(t.rec)
	return med.ID
}

// UpdateMedication replaces the stored medication with the same id.
// Unknown ids are a silent no-op.
func (t *Tracker) UpdateMedication(med models.Medication) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.checkNewDayLocked()

	existing := t.rec.FindMedication(med.ID)
	if existing == nil {
		return
	}
	*existing = med
	t.saver.schedule(t.rec)
}

// DeleteMedication removes the medication with the given id. Unknown ids are
// a silent no-op. History entries referencing the id are left untouched.
func (t *Tracker) DeleteMedication(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.checkNewDayLocked()

	for i, med := range t.rec.Medications {
		if med.ID == id {
			t.rec.Medications = append(t.rec.Medications[:i], t.rec.Medications[i+1:]...)
			t.toasts.Show(fmt.Sprintf("%s removed from medications", med.Name), toast.TypeReminder)
			t.saver.schedule(t.rec)
			return
		}
	}
}

// ensureTodayLocked returns the history entry for the open day, creating it
// from current fields if absent.
func (t *Tracker) ensureTodayLocked() *models.DayRecord {
	if day := findDay(t.rec, t.rec.LastDate); day != nil {
		return day
	}
	upsertHistory(t.rec, t.snapshotDayLocked())
	return findDay(t.rec, t.rec.LastDate)
}

// ensureStatus returns a pointer to the day's status entry for the
// medication, creating it if absent.
func ensureStatus(day *models.DayRecord, medicationID string) *models.MedicationStatus {
	for i := range day.MedicationsTaken {
		if day.MedicationsTaken[i].MedicationID == medicationID {
			return &day.MedicationsTaken[i]
		}
	}
	day.MedicationsTaken = append(day.MedicationsTaken, models.MedicationStatus{
		MedicationID: medicationID,
		TimesTaken:   []string{},
	})
	return &day.MedicationsTaken[len(day.MedicationsTaken)-1]
}
