// ABOUTME: Root Cobra command for pulse CLI.
// ABOUTME: Opens config, store, and cache in PersistentPre/PostRunE.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pulsetrack/pulse/internal/cache"
	"github.com/pulsetrack/pulse/internal/config"
	"github.com/pulsetrack/pulse/internal/models"
	"github.com/pulsetrack/pulse/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg         *config.Config
	store       *storage.DB
	entityCache *cache.Cache
	currentUser *models.User
	logger      *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "Personal training tracker",
	Long: `Pulse is a CLI for tracking training across sports.

WHAT IT TRACKS:

  Sport profile  primary sport, experience level, training cadence
  Workouts       logged sessions with structured exercise lists
  Goals          numeric targets with progress
  Schedule       sessions planned on the calendar
  Health         smartwatch snapshots (steps, heart rate, sleep)

QUICK START:

  $ pulse login you@example.com         # Create a local session
  $ pulse sport set swimming beginner   # Set up your sport profile
  $ pulse workout add "Easy run" --sport running --duration 40
  $ pulse goal add "Run 100km" 100 km
  $ pulse ask "how much rest between hard sessions?"

AI COACH:

  'pulse ask' answers training questions with workout context, and
  'pulse feedback' sends feedback to the team. Both run against the
  function server; 'pulse serve' hosts it.

MCP INTEGRATION:

  Run 'pulse mcp' to start the Model Context Protocol server for use
  with MCP-compatible AI assistants:

  {
    "mcpServers": {
      "pulse": { "command": "pulse", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data lives in the database named by database_url in
  ~/.config/pulse/config.toml (or PULSE_DATABASE_URL). Remote libsql://
  URLs hit the hosted store; the default is a local file under
  ~/.local/share/pulse. A badger cache keeps last-known copies of
  remote entities so reads survive network failures.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		logger = log.New(os.Stderr)

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		currentUser = cfg.Session.User()

		store, err = storage.Open(cfg.GetDatabaseURL())
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}

		// The cache is an optimization: losing it degrades reads, so a
		// failure to open is a warning, not a hard error.
		cacheDir := cfg.GetCacheDir()
		if cacheDir == "" {
			cacheDir = cache.DefaultDir()
		}
		entityCache, err = cache.Open(cacheDir)
		if err != nil {
			logger.Warn("cache unavailable", "err", err)
			entityCache = nil
		}

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if entityCache != nil {
			if err := entityCache.Close(); err != nil {
				logger.Warn("failed to close cache", "err", err)
			}
		}
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// requireUser guards commands that operate on per-user data.
func requireUser() error {
	if currentUser == nil {
		return errors.New("not signed in: run 'pulse login <email>' first")
	}
	return nil
}
