// ABOUTME: CLI commands for session management.
// ABOUTME: login mints a local user and API token; logout clears the session.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/pulsetrack/pulse/internal/models"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Create a session for an email address",
	Long: `Create a local session for an email address.

A user ID and API token are generated and stored in the config file.
The token is also registered with the store so the function server can
authenticate requests from this session.

Running login again with the same email creates a fresh identity; use
logout first if you only want to clear the session.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := strings.TrimSpace(args[0])
		if email == "" || !strings.Contains(email, "@") {
			return fmt.Errorf("invalid email: %s", args[0])
		}

		user := &models.User{ID: uuid.New(), Email: email}
		token, err := newToken()
		if err != nil {
			return fmt.Errorf("failed to generate token: %w", err)
		}

		if err := store.RegisterToken(cmd.Context(), token, user); err != nil {
			return fmt.Errorf("failed to register token: %w", err)
		}
		if err := cfg.SignIn(user, token); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}

		color.Green("✓ Signed in as %s", email)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(user.ID.String()[:8]))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if currentUser == nil {
			fmt.Println("Not signed in.")
			return nil
		}
		if err := cfg.SignOut(); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		color.Green("✓ Signed out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if currentUser == nil {
			fmt.Println("Not signed in.")
			return nil
		}
		fmt.Printf("%s %s\n",
			currentUser.Email,
			color.New(color.Faint).Sprint(currentUser.ID.String()[:8]))
		return nil
	},
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "plt_" + hex.EncodeToString(buf), nil
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
