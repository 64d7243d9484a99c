package cmd

import (
	"netconnect/internal/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// startupStatusCmd represents the startup status command
var startupStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Shows whether the run-at-login entry is installed",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}

		installed, detail, err := startupStatus(cfg)
		if err != nil {
			return err
		}
		if installed {
			color.Green("✔ Startup entry installed: %s", detail)
		} else {
			color.Yellow("! No startup entry installed.")
		}
		return nil
	},
}

func init() {
	startupCmd.AddCommand(startupStatusCmd)
}
