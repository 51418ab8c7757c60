package models

// Frequency describes how many doses of a medication are scheduled per day.
type Frequency string

const (
	FrequencyOnce       Frequency = "once"
	FrequencyTwice      Frequency = "twice"
	FrequencyThreeTimes Frequency = "three_times"
	FrequencyFourTimes  Frequency = "four_times"
	FrequencyCustom     Frequency = "custom"
)

// DosesPerDay returns the scheduled dose count for the frequency. Custom
// frequencies derive their count from the configured times instead.
func (f Frequency) DosesPerDay() int {
	switch f {
	case FrequencyOnce:
		return 1
	case FrequencyTwice:
		return 2
	case FrequencyThreeTimes:
		return 3
	case FrequencyFourTimes:
		return 4
	default:
		return 0
	}
}

// Valid reports whether f is a known frequency value.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyOnce, FrequencyTwice, FrequencyThreeTimes, FrequencyFourTimes, FrequencyCustom:
		return true
	}
	return false
}

// Medication is one tracked medication and its daily dose schedule.
type Medication struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Dosage    string    `json:"dosage"`
	Frequency Frequency `json:"frequency"`
	Times     []string  `json:"times"` // HH:MM, one per scheduled dose
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	Active    bool      `json:"active"`
	Notes     string    `json:"notes,omitempty"`
}

// RequiredDoses is the number of doses needed to complete the medication for a day.
func (m Medication) RequiredDoses() int {
	return len(m.Times)
}
