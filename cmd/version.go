package cmd

import (
	"fmt"

	"netconnect/internal/version"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the netconnect version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "netconnect %s\n", version.Full())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
