package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"droplet/internal/logger"
	"droplet/internal/models"
	"droplet/internal/utils"
)

// JSONStore persists the tracking record as a single JSON file.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.Save(models.DefaultRecord(utils.Today(time.Now())))
}

func (s *JSONStore) Load() (*models.TrackingRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("No stored record, using defaults", "path", s.path)
			return models.DefaultRecord(utils.Today(time.Now())), nil
		}
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}

	return decodeOrDefault(data, s.path), nil
}

func (s *JSONStore) Save(rec *models.TrackingRecord) error {
	data, err := roundTrip(rec)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Path() string {
	return s.path
}
