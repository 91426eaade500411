// ABOUTME: CLI commands for the account profile.
// ABOUTME: show prints identity fields; set edits name and username.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/pulsetrack/pulse/internal/cache"
	"github.com/pulsetrack/pulse/internal/models"
	"github.com/pulsetrack/pulse/internal/storage"
	"github.com/spf13/cobra"
)

var (
	profileName     string
	profileUsername string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the account profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the account profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		p, err := store.GetProfile(cmd.Context(), currentUser.ID)
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Println("No profile yet. Run 'pulse profile set --name <name>'.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		fmt.Printf("Email:    %s\n", p.Email)
		if p.FullName != "" {
			fmt.Printf("Name:     %s\n", p.FullName)
		}
		if p.Username != "" {
			fmt.Printf("Username: @%s\n", p.Username)
		}
		if p.OnboardingCompleted {
			fmt.Println("Setup:    complete")
		} else {
			fmt.Println("Setup:    pending")
		}
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set profile fields",
	Long: `Set profile fields for the signed-in user.

Only the flags given change; other fields keep their values. A profile
is created on first use.

Examples:
  pulse profile set --name "Sam Swimmer"
  pulse profile set --username samswims`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}
		if profileName == "" && profileUsername == "" {
			return fmt.Errorf("nothing to set: pass --name or --username")
		}
		ctx := cmd.Context()

		p, err := store.GetProfile(ctx, currentUser.ID)
		if errors.Is(err, storage.ErrNotFound) {
			p = models.NewProfile(currentUser.ID, currentUser.Email)
		} else if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		if profileName != "" {
			p.WithName(profileName)
		}
		if profileUsername != "" {
			p.WithUsername(profileUsername)
		}

		if err := store.UpsertProfile(ctx, p); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		if entityCache != nil {
			_ = entityCache.Set(cache.ProfilePrefix, currentUser.ID.String(), p)
		}

		color.Green("✓ Profile updated")
		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "display name")
	profileSetCmd.Flags().StringVar(&profileUsername, "username", "", "public handle")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}
