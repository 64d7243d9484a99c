package cmd

import (
	"fmt"
	"os"

	"netconnect/internal/config"
	"netconnect/internal/profile"
	"netconnect/internal/wifi"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var scanOpenOnly bool

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scans for visible WiFi networks",
	Long:  `Scans for visible WiFi networks and marks the ones with a saved profile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}

		conn, err := wifi.New("")
		if err != nil {
			return err
		}

		networks, err := conn.Scan()
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}

		profiles, err := profile.GetAll(cfg)
		if err != nil {
			return err
		}

		if scanOpenOnly {
			var open []wifi.Network
			for _, n := range networks {
				if n.Open() {
					open = append(open, n)
				}
			}
			networks = open
		}

		if len(networks) == 0 {
			color.Yellow("No networks visible.")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header([]string{"SSID", "SIGNAL", "SECURITY", "KNOWN"})
		for _, n := range networks {
			security := n.Security
			if n.Open() {
				security = "open"
			}
			known := ""
			if _, ok := profiles[n.SSID]; ok {
				known = color.GreenString("yes")
			}
			table.Append([]string{
				n.SSID,
				fmt.Sprintf("%d%%", n.Signal),
				security,
				known,
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanOpenOnly, "open", false, "show only unprotected networks")
	rootCmd.AddCommand(scanCmd)
}
