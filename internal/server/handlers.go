package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"droplet/internal/analytics"
	"droplet/internal/models"
	"droplet/internal/tracker"
)

func (s *Server) getRecord(c *gin.Context) {
	c.JSON(http.StatusOK, s.Tracker.Record())
}

func (s *Server) getAchievements(c *gin.Context) {
	rec := s.Tracker.Record()
	unlocked := make([]models.Achievement, 0, len(rec.Achievements))
	for _, a := range models.Catalog {
		if rec.HasAchievement(a.ID) {
			unlocked = append(unlocked, a)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"catalog":  models.Catalog,
		"unlocked": unlocked,
	})
}

func (s *Server) getToast(c *gin.Context) {
	if t := s.Toasts.Current(); t != nil {
		c.JSON(http.StatusOK, t)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) addWater(c *gin.Context) {
	s.Tracker.AddWater()
	c.JSON(http.StatusOK, s.Tracker.Record())
}

func (s *Server) subtractWater(c *gin.Context) {
	s.Tracker.SubtractWater()
	c.JSON(http.StatusOK, s.Tracker.Record())
}

func (s *Server) toggleProbiotic(c *gin.Context) {
	s.Tracker.ToggleProbiotic()
	c.JSON(http.StatusOK, s.Tracker.Record())
}

func (s *Server) listMedications(c *gin.Context) {
	c.JSON(http.StatusOK, s.Tracker.Record().Medications)
}

func (s *Server) addMedication(c *gin.Context) {
	var med models.Medication
	if err := c.ShouldBindJSON(&med); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !med.Frequency.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid frequency"})
		return
	}
	id := s.Tracker.AddMedication(med)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (s *Server) updateMedication(c *gin.Context) {
	var med models.Medication
	if err := c.ShouldBindJSON(&med); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	med.ID = c.Param("id")
	s.Tracker.UpdateMedication(med)
	c.JSON(http.StatusOK, s.Tracker.Record().Medications)
}

func (s *Server) deleteMedication(c *gin.Context) {
	s.Tracker.DeleteMedication(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (s *Server) takeDose(c *gin.Context) {
	id := c.Param("id")
	s.Tracker.TakeMedication(id)
	c.JSON(http.StatusOK, s.Tracker.TodayStatus(id))
}

func (s *Server) removeDose(c *gin.Context) {
	id := c.Param("id")
	s.Tracker.RemoveMedicationDose(id)
	c.JSON(http.StatusOK, s.Tracker.TodayStatus(id))
}

func (s *Server) last7Days(c *gin.Context) {
	rec := s.Tracker.Record()
	c.JSON(http.StatusOK, analytics.Last7Days(&rec, time.Now()))
}

func (s *Server) weekly(c *gin.Context) {
	rec := s.Tracker.Record()
	c.JSON(http.StatusOK, analytics.Weekly(&rec, time.Now()))
}

func (s *Server) monthly(c *gin.Context) {
	rec := s.Tracker.Record()
	c.JSON(http.StatusOK, analytics.Monthly(&rec, time.Now()))
}

func (s *Server) overall(c *gin.Context) {
	rec := s.Tracker.Record()
	c.JSON(http.StatusOK, analytics.Overall(&rec))
}

func (s *Server) getSettings(c *gin.Context) {
	c.JSON(http.StatusOK, s.Tracker.Settings())
}

func (s *Server) updateSettings(c *gin.Context) {
	var settings tracker.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.Tracker.UpdateSettings(settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.Tracker.Settings())
}

func (s *Server) reset(c *gin.Context) {
	s.Tracker.Reset()
	c.JSON(http.StatusOK, s.Tracker.Record())
}
