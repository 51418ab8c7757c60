// Package server exposes the tracker over HTTP: it serves the static web UI
// with an index.html fallback for client-side routes, and mirrors every
// tracker operation as a JSON endpoint under /api/v1.
package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"droplet/internal/toast"
	"droplet/internal/tracker"
)

// Server bundles the router with its collaborators.
type Server struct {
	Tracker *tracker.Tracker
	Toasts  *toast.Slot
	cfg     Config
	now     func() time.Time

	remindedOn string // date of the last reminder toast
}

func New(t *tracker.Tracker, toasts *toast.Slot, cfg Config) *Server {
	return &Server{Tracker: t, Toasts: toasts, cfg: cfg, now: time.Now}
}

// Router builds the gin engine.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if s.cfg.AllowedOrigins == "" || s.cfg.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(s.cfg.AllowedOrigins, ",")
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api/v1")
	{
		api.GET("/healthz", func(c *gin.Context) {
			c.String(http.StatusOK, "OK")
		})

		api.GET("/record", s.getRecord)
		api.GET("/achievements", s.getAchievements)
		api.GET("/toast", s.getToast)

		api.POST("/water/add", s.addWater)
		api.POST("/water/subtract", s.subtractWater)
		api.POST("/probiotic/toggle", s.toggleProbiotic)

		meds := api.Group("/medications")
		{
			meds.GET("", s.listMedications)
			meds.POST("", s.addMedication)
			meds.PUT("/:id", s.updateMedication)
			meds.DELETE("/:id", s.deleteMedication)
			meds.POST("/:id/doses", s.takeDose)
			meds.DELETE("/:id/doses", s.removeDose)
		}

		stats := api.Group("/analytics")
		{
			stats.GET("/last7days", s.last7Days)
			stats.GET("/weekly", s.weekly)
			stats.GET("/monthly", s.monthly)
			stats.GET("/overall", s.overall)
		}

		api.PUT("/settings", s.updateSettings)
		api.GET("/settings", s.getSettings)
		api.POST("/reset", s.reset)
	}

	s.mountStatic(r)

	return r
}

// mountStatic serves the built UI assets and falls back to index.html for
// any unmatched non-API path, leaving routing to the client.
func (s *Server) mountStatic(r *gin.Engine) {
	index := filepath.Join(s.cfg.StaticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		// No UI build present; API-only mode.
		return
	}

	r.Use(staticMiddleware(s.cfg.StaticDir))
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.File(index)
	})
}

func staticMiddleware(dir string) gin.HandlerFunc {
	fs := http.FileServer(http.Dir(dir))
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.Next()
			return
		}
		path := filepath.Join(dir, filepath.Clean(c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fs.ServeHTTP(c.Writer, c.Request)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Run starts the server on the configured port.
func (s *Server) Run() error {
	return s.Router().Run(":" + s.cfg.Port)
}
