// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pulsetrack/pulse/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration. The server communicates via stdin/stdout and operates on
the signed-in user's data.

CONFIGURATION:

  {
    "mcpServers": {
      "pulse": {
        "command": "pulse",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_workout           Log a completed training session
  list_workouts         List recent workouts
  get_workout           Get a workout with its exercise list
  add_goal              Create a training goal
  list_goals            List goals with progress
  update_goal_progress  Set a goal's current value
  complete_goal         Mark a goal as completed
  schedule_workout      Put a workout slot on the calendar
  list_schedule         List scheduled workouts in a range
  get_sport_profile     Read the sport profile
  get_health_snapshot   Read the latest health snapshot

AVAILABLE RESOURCES:

  pulse://sports    Supported sport catalog
  pulse://today     Today's sessions and latest health snapshot
  pulse://summary   Profile, goals, and recent workouts`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		server, err := mcp.NewServer(store, currentUser)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
