package cmd

import (
	"fmt"

	"netconnect/internal/config"
	"netconnect/internal/errors"
	"netconnect/internal/profile"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	addSSID      string
	addWifiPwd   string
	addUsername  string
	addPortalPwd string
	addInterface string
)

// profileAddCmd represents the profile add command
var profileAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Saves credentials for a WiFi network",
	Long: `Saves credentials for a WiFi network. Fields not given as flags are
prompted for; the portal password prompt does not echo.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}

		ssid := addSSID
		if ssid == "" {
			if ssid, err = promptLine("WiFi SSID (name of the network, e.g. G-VIT)"); err != nil {
				return err
			}
		}
		if ssid == "" {
			return errors.E("profile-add", fmt.Errorf("an SSID is required"))
		}

		if existing, err := profile.Find(cfg, ssid); err == nil && existing != "" {
			return errors.E("profile-add", fmt.Errorf("a profile for %q already exists (use `netconnect profile edit`)", ssid))
		}

		username := addUsername
		if username == "" && !cmd.Flags().Changed("username") {
			if username, err = promptLine("Portal username (leave empty if none)"); err != nil {
				return err
			}
		}

		portalPwd := addPortalPwd
		if portalPwd == "" && username != "" && !cmd.Flags().Changed("portal-password") {
			if portalPwd, err = promptPassword("Portal password"); err != nil {
				return err
			}
			if portalPwd == "" {
				return errors.E("profile-add", fmt.Errorf("a portal password is required when a username is set"))
			}
		}

		p := &profile.Profile{
			SSID:      ssid,
			Password:  addWifiPwd,
			Username:  username,
			PortalPwd: portalPwd,
			Interface: addInterface,
		}
		if err := profile.Save(cfg, p); err != nil {
			return err
		}
		color.Green("✔ Credentials saved for %s.", ssid)
		return nil
	},
}

func init() {
	profileAddCmd.Flags().StringVar(&addSSID, "ssid", "", "network name")
	profileAddCmd.Flags().StringVar(&addWifiPwd, "wifi-password", "", "WiFi password (only needed when the OS has no profile yet)")
	profileAddCmd.Flags().StringVar(&addUsername, "username", "", "captive portal username")
	profileAddCmd.Flags().StringVar(&addPortalPwd, "portal-password", "", "captive portal password")
	profileAddCmd.Flags().StringVar(&addInterface, "interface", "", `network service name for networksetup (macOS, default "Wi-Fi")`)
	profileCmd.AddCommand(profileAddCmd)
}
