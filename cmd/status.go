package cmd

import (
	"netconnect/internal/config"
	"netconnect/internal/profile"
	"netconnect/internal/wifi"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Shows the current WiFi and captive portal state",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		settings, err := config.LoadSettings(cfg)
		if err != nil {
			return err
		}

		conn, err := wifi.New("")
		if err != nil {
			return err
		}

		ssid, err := conn.CurrentSSID()
		if err != nil {
			return err
		}
		if ssid == "" {
			color.Yellow("! Not associated with any WiFi network.")
		} else {
			color.Green("✔ Associated with: %s", ssid)

			if found, err := profile.Find(cfg, ssid); err == nil && found != "" {
				color.Green("✔ Profile saved for this network.")
			} else {
				color.Yellow("! No profile saved for this network.")
			}

			captive, err := newPortalClient(settings.Portal).Detect()
			switch {
			case err != nil:
				color.Red("✖ No internet connectivity (%v)", err)
			case captive:
				color.Yellow("! Captive portal detected (run `netconnect login`).")
			default:
				color.Green("✔ Internet reachable, no captive portal.")
			}
		}

		installed, detail, err := startupStatus(cfg)
		if err != nil {
			return err
		}
		if installed {
			color.Green("✔ Startup entry installed: %s", detail)
		} else {
			color.Yellow("! No startup entry (run `netconnect startup install`).")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
