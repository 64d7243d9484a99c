package cmd

import (
	"fmt"

	"netconnect/internal/config"
	"netconnect/internal/errors"
	"netconnect/internal/profile"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// profileRemoveCmd represents the profile remove command
var profileRemoveCmd = &cobra.Command{
	Use:               "remove <ssid>",
	Short:             "Deletes a saved network",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: ProfileNameCompleter,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		ssid := args[0]

		found, err := profile.Find(cfg, ssid)
		if err != nil {
			return err
		}
		if found == "" {
			return errors.E("profile-remove", fmt.Errorf("no profile for %q", ssid))
		}

		if err := profile.Delete(cfg, ssid); err != nil {
			return err
		}
		color.Green("✔ Removed %s.", ssid)
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileRemoveCmd)
}
