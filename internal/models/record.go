package models

import "droplet/internal/constants"

// TrackingRecord is the single persisted record holding all tracking state
// for one user. It is mutated in place by the tracker and written through to
// storage as one JSON value.
type TrackingRecord struct {
	WaterIntake    float64      `json:"water_intake"` // liters consumed today
	DailyGoal      float64      `json:"daily_goal"`   // liters
	GlassSize      int          `json:"glass_size"`   // milliliters per glass
	ProbioticTaken bool         `json:"probiotic_taken"`
	LastDate       string       `json:"last_date"` // YYYY-MM-DD of the open day
	Streak         int          `json:"streak"`
	Achievements   []string     `json:"achievements"`
	ReminderTime   string       `json:"reminder_time"` // HH:MM
	Theme          string       `json:"theme"`
	Medications    []Medication `json:"medications"`
	History        []DayRecord  `json:"history"`
}

// DayRecord is one archived (or in-progress) day.
type DayRecord struct {
	Date             string             `json:"date"` // YYYY-MM-DD
	WaterIntake      float64            `json:"water_intake"`
	GoalMet          bool               `json:"goal_met"`
	ProbioticTaken   bool               `json:"probiotic_taken"`
	MedicationsTaken []MedicationStatus `json:"medications_taken,omitempty"`
}

// MedicationStatus records the doses taken for one medication on one day.
type MedicationStatus struct {
	MedicationID string   `json:"medication_id"`
	TimesTaken   []string `json:"times_taken"` // HH:MM, in the order taken
	Completed    bool     `json:"completed"`
}

// DefaultRecord returns a fresh record with default configuration, opened on
// the given date.
func DefaultRecord(today string) *TrackingRecord {
	return &TrackingRecord{
		DailyGoal:    constants.DefaultDailyGoalLiters,
		GlassSize:    constants.DefaultGlassSizeML,
		LastDate:     today,
		Achievements: []string{},
		ReminderTime: constants.DefaultReminderTime,
		Theme:        constants.DefaultTheme,
		Medications:  []Medication{},
		History:      []DayRecord{},
	}
}

// HasAchievement reports whether the achievement id has been unlocked.
func (r *TrackingRecord) HasAchievement(id string) bool {
	for _, a := range r.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// FindMedication returns the medication with the given id, or nil.
func (r *TrackingRecord) FindMedication(id string) *Medication {
	for i := range r.Medications {
		if r.Medications[i].ID == id {
			return &r.Medications[i]
		}
	}
	return nil
}

// Status returns the dose status for the given medication id, or a zero
// status if none is recorded.
func (d *DayRecord) Status(medicationID string) MedicationStatus {
	for _, ms := range d.MedicationsTaken {
		if ms.MedicationID == medicationID {
			return ms
		}
	}
	return MedicationStatus{MedicationID: medicationID, TimesTaken: []string{}}
}
