package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"droplet/internal/constants"
	"droplet/internal/logger"
	"droplet/internal/models"
	"droplet/internal/utils"
)

// SQLiteStore persists the tracking record as one row of a key-value table.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	return s.Save(models.DefaultRecord(utils.Today(time.Now())))
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	schema := `
 CREATE TABLE IF NOT EXISTS records (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT NOT NULL
 );`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) Load() (*models.TrackingRecord, error) {
	if err := s.open(); err != nil {
		return nil, err
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM records WHERE key = ?", constants.RecordKey).Scan(&value)
	if err == sql.ErrNoRows {
		logger.Debug("No stored record, using defaults", "path", s.path)
		return models.DefaultRecord(utils.Today(time.Now())), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}

	return decodeOrDefault([]byte(value), s.path), nil
}

func (s *SQLiteStore) Save(rec *models.TrackingRecord) error {
	if err := s.open(); err != nil {
		return err
	}

	data, err := roundTrip(rec)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
 INSERT INTO records (key, value, updated_at) VALUES (?, ?, ?)
 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		constants.RecordKey, string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) Path() string {
	return s.path
}
