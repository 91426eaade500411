// ABOUTME: CLI commands for the onboarding gate.
// ABOUTME: status reads the gate; complete and reset flip it.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/pulsetrack/pulse/internal/cache"
	"github.com/pulsetrack/pulse/internal/models"
	"github.com/pulsetrack/pulse/internal/state"
	"github.com/pulsetrack/pulse/internal/storage"
	"github.com/spf13/cobra"
)

var onboardingCmd = &cobra.Command{
	Use:   "onboarding",
	Short: "Manage the onboarding gate",
	Long: `Manage the onboarding gate.

The gate decides whether the setup flow should run. It derives from the
profile's completed flag: a missing profile, an incomplete profile, or
any read error all mean setup is needed.`,
}

var onboardingStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether setup is needed",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		gate := state.NewOnboardingState(store, logger, currentUser)
		gate.Load(cmd.Context())

		if gate.NeedsOnboarding() {
			fmt.Println("Onboarding needed. Run 'pulse sport set' then 'pulse onboarding complete'.")
		} else {
			color.Green("✓ Onboarding complete")
		}
		return nil
	},
}

var onboardingCompleteCmd = &cobra.Command{
	Use:   "complete",
	Short: "Mark onboarding as complete",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}
		ctx := cmd.Context()

		p, err := store.GetProfile(ctx, currentUser.ID)
		if errors.Is(err, storage.ErrNotFound) {
			p = models.NewProfile(currentUser.ID, currentUser.Email)
		} else if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		p.OnboardingCompleted = true
		if err := store.UpsertProfile(ctx, p); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		gate := state.NewOnboardingState(store, logger, currentUser)
		gate.Complete()

		color.Green("✓ Onboarding complete")
		return nil
	},
}

var onboardingResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset onboarding and clear the sport profile",
	Long: `Reset onboarding for the signed-in user.

Clears the onboarding flag and preferences and deletes the sport
profile in a single transaction, so a failure leaves everything as it
was.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		gate := state.NewOnboardingState(store, logger, currentUser)
		if err := gate.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("failed to reset onboarding: %w", err)
		}

		if entityCache != nil {
			_ = entityCache.Delete(cache.SportProfilePrefix, currentUser.ID.String())
		}

		color.Green("✓ Onboarding reset")
		return nil
	},
}

func init() {
	onboardingCmd.AddCommand(onboardingStatusCmd)
	onboardingCmd.AddCommand(onboardingCompleteCmd)
	onboardingCmd.AddCommand(onboardingResetCmd)
	rootCmd.AddCommand(onboardingCmd)
}
