package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"droplet/internal/constants"
	"droplet/internal/logger"
	"droplet/internal/models"
	"droplet/internal/utils"
)

// roundTrip serializes the record and deserializes it back, returning the
// canonical bytes and replacing the in-memory record with the normalized
// copy. This guarantees the persisted value and the live record agree.
func roundTrip(rec *models.TrackingRecord) ([]byte, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize record: %w", err)
	}

	var clean models.TrackingRecord
	if err := json.Unmarshal(data, &clean); err != nil {
		return nil, fmt.Errorf("failed to round-trip record: %w", err)
	}
	*rec = clean

	return data, nil
}

// decodeOrDefault parses stored bytes into a record. Malformed data is logged
// and replaced with a fresh default record rather than surfaced as an error.
func decodeOrDefault(data []byte, path string) *models.TrackingRecord {
	rec := &models.TrackingRecord{}
	if err := json.Unmarshal(data, rec); err != nil {
		logger.Warn("Stored record is malformed, starting fresh", "path", path, "error", err)
		return models.DefaultRecord(utils.Today(time.Now()))
	}
	normalize(rec)
	return rec
}

// normalize fills zero-valued configuration fields with defaults so records
// written by older versions stay loadable. Per-field defaulting is the only
// migration mechanism.
func normalize(rec *models.TrackingRecord) {
	if rec.DailyGoal <= 0 {
		rec.DailyGoal = constants.DefaultDailyGoalLiters
	}
	if rec.GlassSize <= 0 {
		rec.GlassSize = constants.DefaultGlassSizeML
	}
	if rec.LastDate == "" {
		rec.LastDate = utils.Today(time.Now())
	}
	if rec.ReminderTime == "" {
		rec.ReminderTime = constants.DefaultReminderTime
	}
	if rec.Theme == "" {
		rec.Theme = constants.DefaultTheme
	}
	if rec.Achievements == nil {
		rec.Achievements = []string{}
	}
	if rec.Medications == nil {
		rec.Medications = []models.Medication{}
	}
	if rec.History == nil {
		rec.History = []models.DayRecord{}
	}
}
