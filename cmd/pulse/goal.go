// ABOUTME: CLI commands for training goals.
// ABOUTME: add, list, progress, done, and delete with ID-prefix lookup.
package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/pulsetrack/pulse/internal/models"
	"github.com/spf13/cobra"
)

var (
	goalCategory string
	goalDesc     string
	goalBy       string
	goalAll      bool
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage training goals",
}

var goalAddCmd = &cobra.Command{
	Use:   "add <name> <target> [unit]",
	Short: "Add a goal with a numeric target",
	Long: `Add a training goal.

Examples:
  pulse goal add "Run 100km" 100 km
  pulse goal add "Swim sessions" 20 sessions --category consistency
  pulse goal add "Race weight" 74 kg --by 2026-12-01`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		target, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid target: %s", args[1])
		}
		unit := ""
		if len(args) == 3 {
			unit = args[2]
		}

		g := models.NewGoal(currentUser.ID, args[0], target, unit)
		if goalCategory != "" {
			g.WithCategory(goalCategory)
		}
		if goalDesc != "" {
			g.WithDescription(goalDesc)
		}
		if goalBy != "" {
			t, err := time.Parse("2006-01-02", goalBy)
			if err != nil {
				return fmt.Errorf("invalid date %q: want YYYY-MM-DD", goalBy)
			}
			g.WithTargetDate(t)
		}

		if err := store.CreateGoal(cmd.Context(), g); err != nil {
			return fmt.Errorf("failed to create goal: %w", err)
		}

		color.Green("✓ Added goal %q", g.Name)
		fmt.Printf("  %s target %.1f %s\n",
			color.New(color.Faint).Sprint(g.ID.String()[:8]), g.TargetValue, g.Unit)
		return nil
	},
}

var goalListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List goals with progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		goals, err := store.ListGoals(cmd.Context(), currentUser.ID)
		if err != nil {
			return fmt.Errorf("failed to list goals: %w", err)
		}

		shown := 0
		faint := color.New(color.Faint)
		for _, g := range goals {
			if g.Completed && !goalAll {
				continue
			}
			shown++
			status := fmt.Sprintf("%.1f/%.1f %s (%.0f%%)",
				g.CurrentValue, g.TargetValue, g.Unit, g.ProgressPercent())
			if g.Completed {
				status = color.GreenString("done")
			}
			due := ""
			if g.TargetDate != nil {
				due = faint.Sprintf(" by %s", g.TargetDate.Format("2006-01-02"))
			}
			fmt.Printf("%s %s  %s%s\n",
				faint.Sprint(g.ID.String()[:8]), g.Name, status, due)
		}
		if shown == 0 {
			fmt.Println("No goals found.")
		}
		return nil
	},
}

var goalProgressCmd = &cobra.Command{
	Use:   "progress <id> <value>",
	Short: "Set a goal's current value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[1])
		}

		g, err := findGoal(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if err := store.UpdateGoalProgress(cmd.Context(), g.ID, value); err != nil {
			return fmt.Errorf("failed to update goal: %w", err)
		}

		g.CurrentValue = value
		color.Green("✓ %s", g.Name)
		fmt.Printf("  %.1f/%.1f %s (%.0f%%)\n",
			g.CurrentValue, g.TargetValue, g.Unit, g.ProgressPercent())
		return nil
	},
}

var goalDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a goal as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		g, err := findGoal(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if err := store.CompleteGoal(cmd.Context(), g.ID); err != nil {
			return fmt.Errorf("failed to complete goal: %w", err)
		}

		color.Green("✓ Completed %q", g.Name)
		return nil
	},
}

var goalDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		g, err := findGoal(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if err := store.DeleteGoal(cmd.Context(), g.ID); err != nil {
			return fmt.Errorf("failed to delete goal: %w", err)
		}

		color.Green("✓ Deleted %q", g.Name)
		return nil
	},
}

// findGoal matches a full UUID or ID prefix against the user's goals.
func findGoal(ctx context.Context, id string) (*models.Goal, error) {
	goals, err := store.ListGoals(ctx, currentUser.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	var match *models.Goal
	for _, g := range goals {
		if strings.HasPrefix(g.ID.String(), strings.ToLower(id)) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous goal ID prefix: %s", id)
			}
			match = g
		}
	}
	if match == nil {
		return nil, fmt.Errorf("goal not found: %s", id)
	}
	return match, nil
}

func init() {
	goalAddCmd.Flags().StringVar(&goalCategory, "category", "", "goal category")
	goalAddCmd.Flags().StringVar(&goalDesc, "desc", "", "goal description")
	goalAddCmd.Flags().StringVar(&goalBy, "by", "", "target date (YYYY-MM-DD)")
	goalListCmd.Flags().BoolVarP(&goalAll, "all", "a", false, "include completed goals")

	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalProgressCmd)
	goalCmd.AddCommand(goalDoneCmd)
	goalCmd.AddCommand(goalDeleteCmd)
	rootCmd.AddCommand(goalCmd)
}
