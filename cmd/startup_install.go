package cmd

import (
	"fmt"

	"netconnect/internal/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// startupInstallCmd represents the startup install command
var startupInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Registers netconnect to run at login",
	Long: `Creates the OS startup entry that runs 'netconnect connect --quiet' at
login: a registry Run key on Windows, an autostart desktop entry on Linux,
a LaunchAgent on macOS.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}

		color.Cyan("i Installing startup entry...")
		if err := startupInstall(cfg); err != nil {
			return fmt.Errorf("failed to set up startup: %w", err)
		}

		_, detail, err := startupStatus(cfg)
		if err != nil {
			return err
		}
		color.Green("✔ Startup entry installed: %s", detail)
		return nil
	},
}

func init() {
	startupCmd.AddCommand(startupInstallCmd)
}
