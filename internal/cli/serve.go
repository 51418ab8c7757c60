package cli

import (
	"fmt"

	"droplet/internal/logger"
	"droplet/internal/server"
)

type ServeCmd struct {
	Port      string `help:"Port to listen on (overrides config)." default:""`
	StaticDir string `help:"Directory with the built web UI (overrides config)." default:""`
}

func (c *ServeCmd) Run(ctx *Context) error {
	cfg, err := server.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}
	if c.Port != "" {
		cfg.Port = c.Port
	}
	if c.StaticDir != "" {
		cfg.StaticDir = c.StaticDir
	}

	srv := server.New(ctx.Tracker, ctx.Toasts, cfg)

	reminders := srv.StartReminder()
	defer reminders.Stop()
	defer ctx.Tracker.Flush()

	logger.Info("Starting server", "port", cfg.Port, "static", cfg.StaticDir)
	fmt.Printf("🚀 Server listening on port %s\n", cfg.Port)
	return srv.Run()
}
