package storage

import "droplet/internal/models"

// Provider is the persistence contract for the tracking record. The record
// is a single value under a single key; implementations provide no
// transactional guarantee beyond their substrate's atomicity for that key.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Load returns the stored record, falling back to a default record when
	// the store is empty or the stored data is malformed. Parse failures are
	// logged, never returned.
	Load() (*models.TrackingRecord, error)

	// Save persists the record. The record is round-tripped through JSON
	// before committing so the in-memory copy deep-equals what a fresh Load
	// would return.
	Save(*models.TrackingRecord) error

	// Path returns the backing file path.
	Path() string
}
