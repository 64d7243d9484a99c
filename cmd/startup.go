package cmd

import (
	"netconnect/internal/config"
	"netconnect/internal/startup"

	"github.com/spf13/cobra"
)

// Whole-operation seams so cmd tests don't need to reach the OS startup
// machinery.
var (
	startupInstall = func(cfg *config.Config) error {
		g, err := startup.New(cfg)
		if err != nil {
			return err
		}
		return g.Install()
	}
	startupRemove = func(cfg *config.Config) error {
		g, err := startup.New(cfg)
		if err != nil {
			return err
		}
		return g.Remove()
	}
	startupStatus = func(cfg *config.Config) (bool, string, error) {
		g, err := startup.New(cfg)
		if err != nil {
			return false, "", err
		}
		return g.Status()
	}
)

// startupCmd represents the startup command
var startupCmd = &cobra.Command{
	Use:   "startup",
	Short: "Manages the run-at-login registration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(startupCmd)
}
