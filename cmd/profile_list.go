package cmd

import (
	"os"
	"sort"

	"netconnect/internal/config"
	"netconnect/internal/profile"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// profileListCmd represents the profile list command
var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists saved networks",
	Long:  `Lists saved networks. Passwords are never printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}

		all, err := profile.GetAll(cfg)
		if err != nil {
			return err
		}
		if len(all) == 0 {
			color.Yellow("No networks saved yet.")
			return nil
		}

		ssids := make([]string, 0, len(all))
		for ssid := range all {
			ssids = append(ssids, ssid)
		}
		sort.Strings(ssids)

		table := tablewriter.NewWriter(os.Stdout)
		table.Header([]string{"SSID", "PORTAL USER", "PORTAL LOGIN", "INTERFACE"})
		for _, ssid := range ssids {
			p := all[ssid]
			portalLogin := color.YellowString("no")
			if p.HasPortalCredentials() {
				portalLogin = color.GreenString("yes")
			}
			table.Append([]string{ssid, p.Username, portalLogin, p.Interface})
		}
		table.Render()
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileListCmd)
}
