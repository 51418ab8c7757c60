// Package toast implements the in-memory notification channel: a single slot
// holding the current toast, auto-cleared after a fixed delay. Newer toasts
// silently replace older ones; at most one is ever visible.
package toast

import (
	"sync"
	"time"

	"droplet/internal/constants"
)

// Type classifies a toast for presentation.
type Type string

const (
	TypeSuccess     Type = "success"
	TypeAchievement Type = "achievement"
	TypeReminder    Type = "reminder"
)

// Toast is one notification message.
type Toast struct {
	Message string `json:"message"`
	Type    Type   `json:"type"`
}

// Slot holds at most one current toast.
type Slot struct {
	mu       sync.Mutex
	current  *Toast
	timer    *time.Timer
	duration time.Duration
}

// NewSlot returns a slot with the default auto-clear duration.
func NewSlot() *Slot {
	return &Slot{duration: constants.ToastDuration}
}

// NewSlotWithDuration returns a slot with a custom auto-clear duration.
// A zero duration disables auto-clearing.
func NewSlotWithDuration(d time.Duration) *Slot {
	return &Slot{duration: d}
}

// Show replaces the current toast and re-arms the auto-clear timer.
func (s *Slot) Show(message string, typ Type) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = &Toast{Message: message, Type: typ}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.duration > 0 {
		s.timer = time.AfterFunc(s.duration, s.Clear)
	}
}

// Current returns the visible toast, or nil if none.
func (s *Slot) Current() *Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	t := *s.current
	return &t
}

// Clear removes the current toast, if any.
func (s *Slot) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
