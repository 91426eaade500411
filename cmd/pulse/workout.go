// ABOUTME: CLI commands for logging and browsing workouts.
// ABOUTME: Exercises are passed as name:sets:reps:rest flag values.
package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/pulsetrack/pulse/internal/models"
	"github.com/spf13/cobra"
)

var (
	workoutSport     string
	workoutType      string
	workoutDuration  int
	workoutDesc      string
	workoutExercises []string
	workoutListSport string
	workoutListLimit int
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Log and browse workouts",
}

var workoutAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Log a workout",
	Long: `Log a completed workout.

Exercises are given with repeated --exercise flags in the form
name:sets:reps:rest, where sets, reps, and rest are optional.

Examples:
  pulse workout add "Easy run" --sport running --duration 40
  pulse workout add "Upper body" --type strength \
      --exercise "Bench press:4:8:90s" --exercise "Pull-ups:4:max:90s"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		w := models.NewWorkout(currentUser.ID, args[0], workoutSport)
		w.WorkoutType = workoutType
		w.Completed = true
		if workoutDuration > 0 {
			w.WithDuration(workoutDuration)
		}
		if workoutDesc != "" {
			w.WithDescription(workoutDesc)
		}
		if len(workoutExercises) > 0 {
			exercises := make([]models.Exercise, 0, len(workoutExercises))
			for _, spec := range workoutExercises {
				ex, err := parseExercise(spec)
				if err != nil {
					return err
				}
				exercises = append(exercises, ex)
			}
			w.WithExercises(exercises)
		}

		if err := store.CreateWorkout(cmd.Context(), w); err != nil {
			return fmt.Errorf("failed to log workout: %w", err)
		}

		color.Green("✓ Logged %q", w.Title)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(w.ID.String()[:8]))
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		workouts, err := store.ListWorkouts(cmd.Context(), currentUser.ID, workoutListSport, workoutListLimit)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}
		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, w := range workouts {
			sport := ""
			if w.Sport != "" {
				sport = fmt.Sprintf("%s ", models.GetSportInfo(w.Sport).Icon)
			}
			duration := ""
			if w.Duration != nil {
				duration = faint.Sprintf(" %dmin", *w.Duration)
			}
			fmt.Printf("%s %s %s%s%s\n",
				faint.Sprint(w.ID.String()[:8]),
				faint.Sprint(w.CreatedAt.Format("2006-01-02")),
				sport, w.Title, duration)
		}
		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a workout with its exercises",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		id, err := findWorkoutID(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		w, err := store.GetWorkout(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("workout not found: %s", args[0])
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s  %s\n", w.Title, faint.Sprint(w.ID.String()[:8]))
		if w.Sport != "" {
			info := models.GetSportInfo(w.Sport)
			fmt.Printf("  sport     %s %s\n", info.Icon, info.Label)
		}
		if w.WorkoutType != "" {
			fmt.Printf("  type      %s\n", w.WorkoutType)
		}
		if w.Duration != nil {
			fmt.Printf("  duration  %d min\n", *w.Duration)
		}
		if w.Description != "" {
			fmt.Printf("  notes     %s\n", w.Description)
		}
		if len(w.Exercises) > 0 {
			fmt.Println("  exercises")
			for _, ex := range w.Exercises {
				detail := ""
				if ex.Sets > 0 {
					detail = fmt.Sprintf("  %dx%s", ex.Sets, ex.Reps)
				}
				if ex.Rest != "" {
					detail += faint.Sprintf(" rest %s", ex.Rest)
				}
				fmt.Printf("    %s%s\n", ex.Name, detail)
			}
		}
		return nil
	},
}

// parseExercise parses a name:sets:reps:rest flag value. Only the name
// is required.
func parseExercise(spec string) (models.Exercise, error) {
	parts := strings.Split(spec, ":")
	if parts[0] == "" {
		return models.Exercise{}, fmt.Errorf("invalid exercise %q: name is required", spec)
	}

	ex := models.Exercise{Name: parts[0]}
	if len(parts) > 1 && parts[1] != "" {
		sets, err := strconv.Atoi(parts[1])
		if err != nil {
			return models.Exercise{}, fmt.Errorf("invalid sets in %q", spec)
		}
		ex.Sets = sets
	}
	if len(parts) > 2 {
		ex.Reps = parts[2]
	}
	if len(parts) > 3 {
		ex.Rest = parts[3]
	}
	return ex, nil
}

// findWorkoutID matches a full UUID or ID prefix against recent workouts.
func findWorkoutID(ctx context.Context, id string) (uuid.UUID, error) {
	if full, err := uuid.Parse(id); err == nil {
		return full, nil
	}

	workouts, err := store.ListWorkouts(ctx, currentUser.ID, "", 100)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	var match uuid.UUID
	found := false
	for _, w := range workouts {
		if strings.HasPrefix(w.ID.String(), strings.ToLower(id)) {
			if found {
				return uuid.Nil, fmt.Errorf("ambiguous workout ID prefix: %s", id)
			}
			match = w.ID
			found = true
		}
	}
	if !found {
		return uuid.Nil, fmt.Errorf("workout not found: %s", id)
	}
	return match, nil
}

func init() {
	workoutAddCmd.Flags().StringVar(&workoutSport, "sport", "", "sport code")
	workoutAddCmd.Flags().StringVar(&workoutType, "type", "", "session type (endurance, intervals, strength, ...)")
	workoutAddCmd.Flags().IntVar(&workoutDuration, "duration", 0, "duration in minutes")
	workoutAddCmd.Flags().StringVar(&workoutDesc, "desc", "", "free-form notes")
	workoutAddCmd.Flags().StringArrayVar(&workoutExercises, "exercise", nil, "exercise as name:sets:reps:rest (repeatable)")
	workoutListCmd.Flags().StringVarP(&workoutListSport, "sport", "s", "", "filter by sport code")
	workoutListCmd.Flags().IntVarP(&workoutListLimit, "limit", "n", 20, "max number of results")

	workoutCmd.AddCommand(workoutAddCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutShowCmd)
	rootCmd.AddCommand(workoutCmd)
}
