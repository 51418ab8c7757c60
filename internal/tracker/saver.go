package tracker

import (
	"encoding/json"
	"sync"
	"time"

	"droplet/internal/logger"
	"droplet/internal/models"
	"droplet/internal/storage"
)

// saver debounces persistence writes. A burst of mutations produces one
// write after the configured delay; a zero delay writes synchronously. Write
// failures are logged and the in-memory record stays authoritative, there is
// no retry.
type saver struct {
	mu    sync.Mutex
	store storage.Provider
	delay time.Duration
	timer *time.Timer
}

func newSaver(store storage.Provider) *saver {
	return &saver{store: store}
}

// schedule queues a write of rec. Callers must hold the tracker lock; the
// record is snapshotted here so the delayed write never races later
// mutations.
func (s *saver) schedule(rec *models.TrackingRecord) {
	snapshot, ok := copyRecord(rec)
	if !ok {
		return
	}

	if s.delay == 0 {
		s.write(snapshot)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() {
		s.write(snapshot)
	})
}

// flush cancels any pending timer and writes immediately.
func (s *saver) flush(rec *models.TrackingRecord) {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	if snapshot, ok := copyRecord(rec); ok {
		s.write(snapshot)
	}
}

func (s *saver) write(rec *models.TrackingRecord) {
	if err := s.store.Save(rec); err != nil {
		logger.Error("Failed to persist record", "error", err)
	}
}

func copyRecord(rec *models.TrackingRecord) (*models.TrackingRecord, bool) {
	data, err := json.Marshal(rec)
	if err != nil {
		logger.Error("Failed to snapshot record", "error", err)
		return nil, false
	}
	cp := &models.TrackingRecord{}
	if err := json.Unmarshal(data, cp); err != nil {
		logger.Error("Failed to snapshot record", "error", err)
		return nil, false
	}
	return cp, true
}
