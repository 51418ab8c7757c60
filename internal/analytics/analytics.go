// Package analytics derives summary views from the tracking record. Every
// function is pure and recomputes from scratch; with at most 90 archived
// days plus today there is nothing worth caching.
package analytics

import (
	"math"
	"sort"
	"time"

	"droplet/internal/models"
	"droplet/internal/utils"
)

// DayStats is one day of the 7-day chart.
type DayStats struct {
	Date           string  `json:"date"` // YYYY-MM-DD
	Weekday        string  `json:"weekday"`
	WaterIntake    float64 `json:"water_intake"`
	GoalMet        bool    `json:"goal_met"`
	MedicationDone bool    `json:"medication_done"`
}

// WeeklyStats aggregates one week bucket.
type WeeklyStats struct {
	WeekStart      string  `json:"week_start"` // YYYY-MM-DD
	TotalWater     float64 `json:"total_water"`
	AverageDaily   float64 `json:"average_daily"`
	GoalMetDays    int     `json:"goal_met_days"`
	MedicationDays int     `json:"medication_days"`
	TotalDays      int     `json:"total_days"`
}

// MonthlyStats aggregates one calendar month.
type MonthlyStats struct {
	Month          string  `json:"month"`
	Year           int     `json:"year"`
	TotalWater     float64 `json:"total_water"`
	AverageDaily   float64 `json:"average_daily"`
	GoalMetDays    int     `json:"goal_met_days"`
	MedicationDays int     `json:"medication_days"`
	TotalDays      int     `json:"total_days"`
	BestStreak     int     `json:"best_streak"`
}

// OverallStats aggregates the entire combined history.
type OverallStats struct {
	TotalDays            int     `json:"total_days"`
	AverageDaily         float64 `json:"average_daily"`
	GoalMetPercentage    float64 `json:"goal_met_percentage"`
	MedicationCompliance float64 `json:"medication_compliance"`
	TotalWaterConsumed   float64 `json:"total_water_consumed"`
	CurrentStreak        int     `json:"current_streak"`
}

// Combined merges history with a synthesized entry for the open day, today's
// live fields overriding any stale history entry for the same date. The
// result is sorted descending by date with unique dates.
func Combined(rec *models.TrackingRecord) []models.DayRecord {
	today := models.DayRecord{
		Date:           rec.LastDate,
		WaterIntake:    rec.WaterIntake,
		GoalMet:        rec.WaterIntake >= rec.DailyGoal,
		ProbioticTaken: rec.ProbioticTaken,
	}

	combined := make([]models.DayRecord, 0, len(rec.History)+1)
	replaced := false
	for _, day := range rec.History {
		if day.Date == today.Date {
			// Keep recorded doses, refresh the live fields.
			today.MedicationsTaken = day.MedicationsTaken
			combined = append(combined, today)
			replaced = true
		} else {
			combined = append(combined, day)
		}
	}
	if !replaced {
		combined = append(combined, today)
	}

	sort.Slice(combined, func(i, j int) bool {
		return combined[i].Date > combined[j].Date
	})
	return combined
}

// Last7Days returns exactly seven entries, one per calendar day from six
// days ago through today, oldest first. Days without data are zero-filled.
func Last7Days(rec *models.TrackingRecord, now time.Time) []DayStats {
	combined := Combined(rec)
	byDate := make(map[string]models.DayRecord, len(combined))
	for _, day := range combined {
		byDate[day.Date] = day
	}

	days := make([]DayStats, 0, 7)
	for i := 6; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		key := utils.Today(date)
		stats := DayStats{Date: key, Weekday: date.Format("Mon")}
		if day, ok := byDate[key]; ok {
			stats.WaterIntake = day.WaterIntake
			stats.GoalMet = day.GoalMet
			stats.MedicationDone = medicationDone(day)
		}
		days = append(days, stats)
	}
	return days
}

// Weekly partitions the combined history into the last four week buckets,
// anchored at the most recent week start on or before today. Empty buckets
// are omitted; output is oldest to newest.
func Weekly(rec *models.TrackingRecord, now time.Time) []WeeklyStats {
	combined := Combined(rec)

	var weeks []WeeklyStats
	for i := 3; i >= 0; i-- {
		weekStart := startOfDay(now).AddDate(0, 0, -(int(now.Weekday()) + 7*i))
		weekEnd := weekStart.AddDate(0, 0, 6)

		bucket := filterRange(combined, weekStart, weekEnd)
		if len(bucket) == 0 {
			continue
		}

		total, goalMet, medDays := tally(bucket)
		weeks = append(weeks, WeeklyStats{
			WeekStart:      utils.Today(weekStart),
			TotalWater:     round2(total),
			AverageDaily:   round2(total / float64(len(bucket))),
			GoalMetDays:    goalMet,
			MedicationDays: medDays,
			TotalDays:      len(bucket),
		})
	}
	return weeks
}

// Monthly aggregates the trailing three calendar months, oldest to newest.
// BestStreak is the longest run of goal-met days within the month.
func Monthly(rec *models.TrackingRecord, now time.Time) []MonthlyStats {
	combined := Combined(rec)

	var months []MonthlyStats
	for i := 2; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, -1)

		bucket := filterRange(combined, monthStart, monthEnd)
		if len(bucket) == 0 {
			continue
		}

		total, goalMet, medDays := tally(bucket)
		months = append(months, MonthlyStats{
			Month:          monthStart.Format("January"),
			Year:           monthStart.Year(),
			TotalWater:     round2(total),
			AverageDaily:   round2(total / float64(len(bucket))),
			GoalMetDays:    goalMet,
			MedicationDays: medDays,
			TotalDays:      len(bucket),
			BestStreak:     bestStreak(bucket),
		})
	}
	return months
}

// Overall aggregates the entire combined list, returning zero defaults when
// it is empty.
func Overall(rec *models.TrackingRecord) OverallStats {
	combined := Combined(rec)
	if len(combined) == 0 {
		return OverallStats{CurrentStreak: rec.Streak}
	}

	total, goalMet, medDays := tally(combined)
	n := float64(len(combined))
	return OverallStats{
		TotalDays:            len(combined),
		AverageDaily:         round2(total / n),
		GoalMetPercentage:    math.Round(float64(goalMet) / n * 100),
		MedicationCompliance: math.Round(float64(medDays) / n * 100),
		TotalWaterConsumed:   round2(total),
		CurrentStreak:        rec.Streak,
	}
}

// medicationDone reports whether the day counts as medication-compliant:
// the probiotic flag is set or any tracked medication was completed.
func medicationDone(day models.DayRecord) bool {
	if day.ProbioticTaken {
		return true
	}
	for _, ms := range day.MedicationsTaken {
		if ms.Completed {
			return true
		}
	}
	return false
}

func filterRange(days []models.DayRecord, start, end time.Time) []models.DayRecord {
	var out []models.DayRecord
	for _, day := range days {
		d, err := utils.ParseDate(day.Date)
		if err != nil {
			continue
		}
		if !d.Before(start) && !d.After(end) {
			out = append(out, day)
		}
	}
	return out
}

func tally(days []models.DayRecord) (total float64, goalMet, medDays int) {
	for _, day := range days {
		total += day.WaterIntake
		if day.GoalMet {
			goalMet++
		}
		if medicationDone(day) {
			medDays++
		}
	}
	return total, goalMet, medDays
}

// bestStreak scans the days in ascending date order tracking the longest run
// of goal-met days.
func bestStreak(days []models.DayRecord) int {
	sorted := make([]models.DayRecord, len(days))
	copy(sorted, days)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	best, current := 0, 0
	for _, day := range sorted {
		if day.GoalMet {
			current++
			if current > best {
				best = current
			}
		} else {
			current = 0
		}
	}
	return best
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
