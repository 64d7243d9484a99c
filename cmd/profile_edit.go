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
	editWifiPwd   string
	editUsername  string
	editPortalPwd string
	editInterface string
	editPromptPwd bool
)

// profileEditCmd represents the profile edit command
var profileEditCmd = &cobra.Command{
	Use:   "edit <ssid>",
	Short: "Updates a saved network",
	Long: `Updates fields of a saved network. Only the fields given as flags change;
use --prompt-portal-password to re-enter the portal password without echo.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: ProfileNameCompleter,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		ssid := args[0]

		p, err := profile.Load(cfg, ssid)
		if err != nil {
			return fmt.Errorf("no profile for %q (run `netconnect profile add` first): %w", ssid, err)
		}

		changed := false
		if cmd.Flags().Changed("wifi-password") {
			p.Password = editWifiPwd
			changed = true
		}
		if cmd.Flags().Changed("username") {
			p.Username = editUsername
			changed = true
		}
		if cmd.Flags().Changed("portal-password") {
			p.PortalPwd = editPortalPwd
			changed = true
		}
		if cmd.Flags().Changed("interface") {
			p.Interface = editInterface
			changed = true
		}
		if editPromptPwd {
			pwd, err := promptPassword("Portal password")
			if err != nil {
				return err
			}
			p.PortalPwd = pwd
			changed = true
		}

		if !changed {
			return errors.E("profile-edit", fmt.Errorf("nothing to change (pass at least one field flag)"))
		}

		if err := profile.Save(cfg, p); err != nil {
			return err
		}
		color.Green("✔ Updated %s.", ssid)
		return nil
	},
}

func init() {
	profileEditCmd.Flags().StringVar(&editWifiPwd, "wifi-password", "", "WiFi password")
	profileEditCmd.Flags().StringVar(&editUsername, "username", "", "captive portal username")
	profileEditCmd.Flags().StringVar(&editPortalPwd, "portal-password", "", "captive portal password")
	profileEditCmd.Flags().StringVar(&editInterface, "interface", "", "network service name for networksetup (macOS)")
	profileEditCmd.Flags().BoolVar(&editPromptPwd, "prompt-portal-password", false, "prompt for the portal password without echo")
	profileCmd.AddCommand(profileEditCmd)
}
