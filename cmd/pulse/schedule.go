// ABOUTME: CLI commands for the workout calendar.
// ABOUTME: add, list over a date range, and done to mark completion.
package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/pulsetrack/pulse/internal/models"
	"github.com/spf13/cobra"
)

var (
	scheduleSport string
	scheduleTime  string
	scheduleFrom  string
	scheduleTo    string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Plan workouts on the calendar",
}

var scheduleAddCmd = &cobra.Command{
	Use:   "add <title> <date>",
	Short: "Schedule a workout for a date",
	Long: `Schedule a workout.

Examples:
  pulse schedule add "Morning swim" 2026-09-01 --sport swimming --time morning
  pulse schedule add "Long ride" 2026-09-06 --sport cycling`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		date, err := time.Parse("2006-01-02", args[1])
		if err != nil {
			return fmt.Errorf("invalid date %q: want YYYY-MM-DD", args[1])
		}

		sw := models.NewScheduledWorkout(currentUser.ID, args[0], scheduleSport, date)
		if scheduleTime != "" {
			sw.WithTimeOfDay(scheduleTime)
		}

		if err := store.CreateScheduledWorkout(cmd.Context(), sw); err != nil {
			return fmt.Errorf("failed to schedule workout: %w", err)
		}

		color.Green("✓ Scheduled %q for %s", sw.Title, args[1])
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(sw.ID.String()[:8]))
		return nil
	},
}

var scheduleListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List scheduled workouts",
	Long: `List scheduled workouts in a date range.

Defaults to the week starting today. Use --from and --to for other
ranges.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		from := scheduleFrom
		if from == "" {
			from = time.Now().Format("2006-01-02")
		}
		to := scheduleTo
		if to == "" {
			to = time.Now().AddDate(0, 0, 7).Format("2006-01-02")
		}

		scheduled, err := store.ListScheduledWorkouts(cmd.Context(), currentUser.ID, from, to)
		if err != nil {
			return fmt.Errorf("failed to list schedule: %w", err)
		}
		if len(scheduled) == 0 {
			fmt.Println("Nothing scheduled.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, sw := range scheduled {
			marker := " "
			if sw.Completed {
				marker = color.GreenString("✓")
			} else if sw.Skipped {
				marker = faint.Sprint("-")
			}
			slot := ""
			if sw.TimeOfDay != "" {
				slot = faint.Sprintf(" %s", sw.TimeOfDay)
			}
			sport := ""
			if sw.Sport != "" {
				sport = fmt.Sprintf("%s ", models.GetSportInfo(sw.Sport).Icon)
			}
			fmt.Printf("%s %s %s%s %s%s\n",
				marker,
				faint.Sprint(sw.ID.String()[:8]),
				faint.Sprint(sw.ScheduledDate.Format("2006-01-02")),
				slot, sport, sw.Title)
		}
		return nil
	},
}

var scheduleDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a scheduled workout as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		sw, err := findScheduledWorkout(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if err := store.CompleteScheduledWorkout(cmd.Context(), sw.ID); err != nil {
			return fmt.Errorf("failed to complete scheduled workout: %w", err)
		}

		color.Green("✓ Completed %q", sw.Title)
		return nil
	},
}

// findScheduledWorkout matches a full UUID or ID prefix against the
// whole calendar.
func findScheduledWorkout(ctx context.Context, id string) (*models.ScheduledWorkout, error) {
	scheduled, err := store.ListScheduledWorkouts(ctx, currentUser.ID, "0001-01-01", "9999-12-31")
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule: %w", err)
	}

	var match *models.ScheduledWorkout
	for _, sw := range scheduled {
		if strings.HasPrefix(sw.ID.String(), strings.ToLower(id)) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous schedule ID prefix: %s", id)
			}
			match = sw
		}
	}
	if match == nil {
		return nil, fmt.Errorf("scheduled workout not found: %s", id)
	}
	return match, nil
}

func init() {
	scheduleAddCmd.Flags().StringVar(&scheduleSport, "sport", "", "sport code")
	scheduleAddCmd.Flags().StringVar(&scheduleTime, "time", "", "slot (morning, afternoon, evening)")
	scheduleListCmd.Flags().StringVar(&scheduleFrom, "from", "", "range start (YYYY-MM-DD)")
	scheduleListCmd.Flags().StringVar(&scheduleTo, "to", "", "range end (YYYY-MM-DD)")

	scheduleCmd.AddCommand(scheduleAddCmd)
	scheduleCmd.AddCommand(scheduleListCmd)
	scheduleCmd.AddCommand(scheduleDoneCmd)
	rootCmd.AddCommand(scheduleCmd)
}
