package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"droplet/internal/cli"
	"droplet/internal/constants"
	"droplet/internal/errors"
	"droplet/internal/logger"
	"droplet/internal/storage"
	"droplet/internal/toast"
	"droplet/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Data file path. A .json extension selects the JSON store, anything else SQLite." default:"~/.config/droplet/droplet.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`
	Simple  bool   `help:"Track a single probiotic flag instead of a medication list."`

	Init         cli.InitCmd         `cmd:"" help:"Initialize droplet storage."`
	Tui          cli.TuiCmd          `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Serve        cli.ServeCmd        `cmd:"" help:"Serve the web UI and JSON API."`
	Water        cli.WaterCmd        `cmd:"" help:"Log and inspect water intake."`
	Med          cli.MedCmd          `cmd:"" help:"Manage medications and doses."`
	Stats        cli.StatsCmd        `cmd:"" help:"Show intake and adherence analytics."`
	Achievements cli.AchievementsCmd `cmd:"" help:"Show unlocked achievements."`
	Settings     cli.SettingsCmd     `cmd:"" help:"Manage goal, glass size, reminder, and theme."`
	Reset        cli.ResetCmd        `cmd:"" help:"Clear tracking data, keeping settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("droplet"),
		kong.Description("Personal water intake and medication tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.3.0"},
	)

	dataPath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, DataDir: filepath.Dir(dataPath)}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}

	var store storage.Provider
	if strings.HasSuffix(dataPath, ".json") {
		store = storage.NewJSONStore(dataPath)
	} else {
		store = storage.NewSQLiteStore(dataPath)
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store:  store,
		Toasts: toast.NewSlot(),
	}

	// Init manages the store itself; everything else needs a live tracker.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		opts := []tracker.Option{}
		if CLI.Simple {
			opts = append(opts, tracker.WithMode(tracker.ModeSingleFlag))
		}
		if longRunning(ctx.Selected().Name) {
			opts = append(opts, tracker.WithSaveDebounce(constants.SaveDebounce))
		}

		t, err := tracker.New(store, appCtx.Toasts, opts...)
		if err != nil {
			errors.Fatal(err)
		}
		appCtx.Tracker = t
	}

	errors.Fatal(ctx.Run(appCtx))
}

// longRunning reports whether the command keeps the process alive, making
// debounced saves worthwhile. One-shot commands save synchronously.
func longRunning(name string) bool {
	return name == "serve" || name == "tui"
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
