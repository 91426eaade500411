// ABOUTME: CLI commands for the sport profile.
// ABOUTME: list shows the catalog; show and set read and write the profile.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/pulsetrack/pulse/internal/models"
	"github.com/pulsetrack/pulse/internal/state"
	"github.com/spf13/cobra"
)

var (
	sportFrequency   int
	sportDuration    int
	sportCompetitive string
	sportGoals       string
)

var sportCmd = &cobra.Command{
	Use:   "sport",
	Short: "Manage your sport profile",
}

var sportListCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported sports",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, code := range models.AllSports {
			info := models.GetSportInfo(code)
			fmt.Printf("%s  %s %s\n", info.Icon, info.Label,
				color.New(color.Faint).Sprintf("(%s)", code))
		}
		return nil
	},
}

var sportShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your sport profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		profile := state.NewSportProfileState(store, entityCache, logger, currentUser)
		profile.Load(cmd.Context())

		sp := profile.Profile()
		if !sp.HasProfile() {
			fmt.Println("No sport profile yet. Run 'pulse sport set <sport> <experience>'.")
			return nil
		}

		info := models.GetSportInfo(sp.PrimarySport)
		fmt.Printf("%s %s\n", info.Icon, info.Label)
		fmt.Printf("  experience  %s\n", sp.ExperienceLevel)
		if sp.CompetitiveLevel != "" {
			fmt.Printf("  competes    %s\n", sp.CompetitiveLevel)
		}
		fmt.Printf("  cadence     %d sessions/week, %d min each\n",
			sp.TrainingFrequency, sp.SessionDuration)
		if sp.CurrentGoals != "" {
			fmt.Printf("  goals       %s\n", sp.CurrentGoals)
		}
		return nil
	},
}

var sportSetCmd = &cobra.Command{
	Use:   "set <sport> <experience>",
	Short: "Set your sport and experience level",
	Long: `Set your sport profile.

Examples:
  pulse sport set swimming beginner
  pulse sport set running intermediate --frequency 4 --duration 45
  pulse sport set cycling advanced --competitive club`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		sp := models.DefaultSportProfile(currentUser.ID)
		sp.PrimarySport = args[0]
		sp.ExperienceLevel = args[1]
		sp.CompetitiveLevel = sportCompetitive
		sp.CurrentGoals = sportGoals
		if sportFrequency > 0 {
			sp.TrainingFrequency = sportFrequency
		}
		if sportDuration > 0 {
			sp.SessionDuration = sportDuration
		}

		profile := state.NewSportProfileState(store, entityCache, logger, currentUser)
		if err := profile.Save(cmd.Context(), sp); err != nil {
			return fmt.Errorf("failed to save sport profile: %w", err)
		}

		info := models.GetSportInfo(sp.PrimarySport)
		color.Green("✓ Sport profile saved")
		fmt.Printf("  %s %s, %s\n", info.Icon, info.Label, sp.ExperienceLevel)
		return nil
	},
}

func init() {
	sportSetCmd.Flags().IntVar(&sportFrequency, "frequency", 0, "training sessions per week")
	sportSetCmd.Flags().IntVar(&sportDuration, "duration", 0, "session duration in minutes")
	sportSetCmd.Flags().StringVar(&sportCompetitive, "competitive", "", "competitive level (recreational, club, elite)")
	sportSetCmd.Flags().StringVar(&sportGoals, "goals", "", "free-form current goals")

	sportCmd.AddCommand(sportListCmd)
	sportCmd.AddCommand(sportShowCmd)
	sportCmd.AddCommand(sportSetCmd)
	rootCmd.AddCommand(sportCmd)
}
