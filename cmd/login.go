package cmd

import (
	"fmt"

	"netconnect/internal/config"
	"netconnect/internal/errors"
	"netconnect/internal/logging"
	"netconnect/internal/profile"
	"netconnect/internal/wifi"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login [ssid]",
	Short: "Logs in to the captive portal of the current network",
	Long: `Runs captive portal detection and login only, without touching the WiFi
association. Uses the profile for the named network, or for the currently
associated one when no SSID is given.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: ProfileNameCompleter,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		settings, err := config.LoadSettings(cfg)
		if err != nil {
			return err
		}
		if err := logging.Initialize(cfg.GetLogPath()); err != nil {
			return err
		}
		defer logging.Sync()

		ssid := ""
		if len(args) == 1 {
			ssid = args[0]
		}
		if ssid == "" {
			conn, err := wifi.New("")
			if err != nil {
				return err
			}
			ssid, err = conn.CurrentSSID()
			if err != nil {
				return err
			}
			if ssid == "" {
				return errors.E("login", fmt.Errorf("not associated with any WiFi network"))
			}
		}

		p, err := profile.Load(cfg, ssid)
		if err != nil {
			return fmt.Errorf("no profile for %q (run `netconnect profile add` first): %w", ssid, err)
		}

		return portalLogin(settings, p, uuid.NewString())
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
