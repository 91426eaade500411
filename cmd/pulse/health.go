// ABOUTME: CLI commands for device health data via the bridge.
// ABOUTME: status probes, connect requests permissions, pull aggregates a day.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/pulsetrack/pulse/internal/healthkit"
	"github.com/pulsetrack/pulse/internal/state"
	"github.com/spf13/cobra"
)

var healthDate string

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Sync smartwatch health data",
	Long: `Sync smartwatch health data through the device bridge.

The bridge is a local daemon exposing the watch SDK over HTTP. Point
bridge_url in the config (or PULSE_BRIDGE_URL) at it. Pulled snapshots
are stored one per user: a later pull replaces the previous one.`,
}

var healthStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the bridge connection",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := healthState(cmd)
		if err != nil {
			return err
		}

		status := h.CheckConnection(cmd.Context())
		if status.IsConnected {
			color.Green("✓ Connected (%s)", status.Status)
		} else {
			fmt.Printf("Disconnected: %s", status.Status)
			if status.Error != "" {
				fmt.Printf(" (%s)", status.Error)
			}
			fmt.Println()
		}
		return nil
	},
}

var healthConnectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Request health data permissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := healthState(cmd)
		if err != nil {
			return err
		}

		result := h.RequestPermissions(cmd.Context())
		if !result.Success {
			return fmt.Errorf("permission request failed: %s", result.Error)
		}
		color.Green("✓ Permissions granted")
		return nil
	},
}

var healthPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Pull a day's health data into a snapshot",
	Long: `Pull steps, heart rate, and sleep for one day.

The three queries run in parallel; a category that fails contributes
zeroes rather than failing the pull. Defaults to today.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := healthState(cmd)
		if err != nil {
			return err
		}

		date := healthDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		} else if _, err := time.Parse("2006-01-02", date); err != nil {
			return fmt.Errorf("invalid date %q: want YYYY-MM-DD", date)
		}

		snap := h.FetchHealthData(cmd.Context(), date)

		color.Green("✓ Pulled health data for %s", snap.Date)
		fmt.Printf("  steps       %d\n", snap.Steps)
		fmt.Printf("  heart rate  avg %d, max %d, min %d\n",
			snap.HeartRate.Average, snap.HeartRate.Max, snap.HeartRate.Min)
		fmt.Printf("  sleep       %dmin (deep %d, light %d, rem %d)\n",
			snap.Sleep.Total, snap.Sleep.Deep, snap.Sleep.Light, snap.Sleep.REM)
		return nil
	},
}

func healthState(cmd *cobra.Command) (*state.HealthState, error) {
	if err := requireUser(); err != nil {
		return nil, err
	}
	if cfg.BridgeURL == "" {
		return nil, fmt.Errorf("no bridge configured: set bridge_url or PULSE_BRIDGE_URL")
	}

	bridge := healthkit.NewBridgeClient(cfg.BridgeURL)
	return state.NewHealthState(cmd.Context(), bridge, store, entityCache, logger, currentUser), nil
}

func init() {
	healthPullCmd.Flags().StringVar(&healthDate, "date", "", "date to pull (YYYY-MM-DD, default today)")

	healthCmd.AddCommand(healthStatusCmd)
	healthCmd.AddCommand(healthConnectCmd)
	healthCmd.AddCommand(healthPullCmd)
	rootCmd.AddCommand(healthCmd)
}
