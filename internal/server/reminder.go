package server

import (
	"github.com/robfig/cron/v3"

	"droplet/internal/logger"
	"droplet/internal/toast"
	"droplet/internal/utils"
)

// StartReminder runs a minutely cron job that shows a probiotic reminder
// toast once the configured reminder time has passed without the probiotic
// being taken. At most one reminder fires per day. The returned cron should
// be stopped on shutdown.
func (s *Server) StartReminder() *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("* * * * *", s.checkReminder); err != nil {
		logger.Error("Failed to schedule reminder job", "error", err)
		return c
	}
	c.Start()
	return c
}

func (s *Server) checkReminder() {
	rec := s.Tracker.Record()
	if rec.ProbioticTaken || s.remindedOn == rec.LastDate {
		return
	}

	reminder, err := utils.ClockMinutes(rec.ReminderTime)
	if err != nil {
		logger.Warn("Invalid reminder time", "value", rec.ReminderTime, "error", err)
		return
	}

	now := s.now()
	if now.Hour()*60+now.Minute() >= reminder {
		s.Toasts.Show("Time for your GoodBug probiotic! 💊", toast.TypeReminder)
		s.remindedOn = rec.LastDate
	}
}
