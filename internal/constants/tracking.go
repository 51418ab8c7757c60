package constants

import "time"

const (
	// RecordKey is the storage key under which the full tracking record is persisted.
	RecordKey = "tracking-data"

	// HistoryLimit caps the number of archived day records kept in the store.
	HistoryLimit = 90

	// IntakeOverflowLiters is how far past the daily goal intake may be logged.
	IntakeOverflowLiters = 1.0

	// Default Record Values
	DefaultDailyGoalLiters = 2.0
	DefaultGlassSizeML     = 250
	DefaultReminderTime    = "09:00"
	DefaultTheme           = "light"

	// Settings Bounds
	MinDailyGoalLiters = 1.0
	MaxDailyGoalLiters = 5.0
	MinGlassSizeML     = 100
	MaxGlassSizeML     = 500

	// Achievement Time Windows
	EarlyBirdBeforeHour = 9
	NightOwlFromHour    = 22
)

const (
	// ToastDuration is how long a notification stays visible before auto-clearing.
	ToastDuration = 4 * time.Second

	// SaveDebounce is the default delay between a mutation and its persistence write.
	SaveDebounce = 500 * time.Millisecond
)

// IntakeMilestones are the goal percentages that unlock milestone achievements,
// in ascending order.
var IntakeMilestones = []int{25, 50, 75, 100}

// StreakMilestones are the consecutive-day counts that unlock streak achievements,
// in ascending order.
var StreakMilestones = []int{3, 7, 14, 30}
