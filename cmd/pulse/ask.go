// ABOUTME: CLI commands for the AI coach: ask and feedback.
// ABOUTME: Uses a remote function server when configured, else in-process.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pulsetrack/pulse/internal/config"
	"github.com/pulsetrack/pulse/internal/functions"
	"github.com/spf13/cobra"
)

var (
	askSport     string
	askWorkout   string
	feedbackType string
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the AI coach a training question",
	Long: `Ask the AI coach a question, optionally with workout context.

With --workout the workout's data is sent along so the coach can answer
about that specific session. Questions and answers are kept as history.

Requires GEMINI_API_KEY (or a functions_url pointing at a server that
has it).

Examples:
  pulse ask "how much rest between hard sessions?"
  pulse ask "was my pacing even?" --workout 3f2a91c8`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}
		ctx := cmd.Context()

		req := functions.AskRequest{
			Question: strings.Join(args, " "),
			Sport:    askSport,
		}
		if askWorkout != "" {
			id, err := findWorkoutID(ctx, askWorkout)
			if err != nil {
				return err
			}
			w, err := store.GetWorkout(ctx, id)
			if err != nil {
				return fmt.Errorf("workout not found: %s", askWorkout)
			}
			data, err := json.Marshal(w)
			if err != nil {
				return fmt.Errorf("failed to encode workout: %w", err)
			}
			req.WorkoutData = data
			req.WorkoutID = w.ID.String()
			if req.Sport == "" {
				req.Sport = w.Sport
			}
		}

		var answer string
		if cfg.FunctionsURL != "" {
			client := functions.NewClient(cfg.FunctionsURL, cfg.Session.Token)
			var resp functions.AskResponse
			if err := client.Invoke(ctx, "ask-workout-question", req, &resp); err != nil {
				return err
			}
			answer = resp.Answer
		} else {
			srv := newLocalFunctions()
			var err error
			answer, err = srv.Ask(ctx, currentUser, req)
			if err != nil {
				return err
			}
		}

		fmt.Println(answer)
		return nil
	},
}

var feedbackCmd = &cobra.Command{
	Use:   "feedback <text>",
	Short: "Send feedback to the team",
	Long: `Send feedback to the team.

Examples:
  pulse feedback "love the schedule view"
  pulse feedback "sleep minutes look doubled" --type bug`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		text := strings.TrimSpace(strings.Join(args, " "))
		if text == "" {
			return fmt.Errorf("feedback text is required")
		}

		req := functions.FeedbackRequest{
			Feedback:     text,
			FeedbackType: feedbackType,
			UserEmail:    currentUser.Email,
			UserID:       currentUser.ID.String(),
		}

		if cfg.FunctionsURL != "" {
			client := functions.NewClient(cfg.FunctionsURL, cfg.Session.Token)
			if err := client.Invoke(cmd.Context(), "send-feedback", req, nil); err != nil {
				return err
			}
		} else {
			srv := newLocalFunctions()
			if _, err := srv.SendFeedback(cmd.Context(), currentUser, req); err != nil {
				return err
			}
		}

		color.Green("✓ Feedback sent")
		return nil
	},
}

// newLocalFunctions builds an in-process function server from the
// environment keys. Providers with absent keys stay nil and report as
// not configured.
func newLocalFunctions() *functions.Server {
	var answerer functions.Answerer
	if key := config.GeminiAPIKey(); key != "" {
		answerer = functions.NewGeminiClient(key)
	}
	var mailer functions.Mailer
	if key := config.ResendAPIKey(); key != "" {
		mailer = functions.NewResendMailer(key)
	}
	return functions.NewServer(store, answerer, mailer, logger)
}

func init() {
	askCmd.Flags().StringVar(&askSport, "sport", "", "sport context for the question")
	askCmd.Flags().StringVar(&askWorkout, "workout", "", "workout ID or prefix to attach as context")
	feedbackCmd.Flags().StringVar(&feedbackType, "type", "", "feedback type (bug, idea, other)")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(feedbackCmd)
}
