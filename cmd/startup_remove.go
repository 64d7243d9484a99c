package cmd

import (
	"fmt"

	"netconnect/internal/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// startupRemoveCmd represents the startup remove command
var startupRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Unregisters netconnect from running at login",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}

		if err := startupRemove(cfg); err != nil {
			return fmt.Errorf("failed to remove startup entry: %w", err)
		}
		color.Green("✔ Startup entry removed.")
		return nil
	},
}

func init() {
	startupCmd.AddCommand(startupRemoveCmd)
}
