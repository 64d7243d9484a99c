package cmd

import (
	"log"
	"sort"

	"netconnect/internal/config"
	"netconnect/internal/profile"

	"github.com/spf13/cobra"
)

func ProfileNameCompleter(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfg, err := config.New()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	all, err := profile.GetAll(cfg)
	if err != nil {
		// Log to stderr, which is appropriate for completion scripts
		log.Println("Error getting profile list for completion:", err)
		return nil, cobra.ShellCompDirectiveError
	}

	ssids := make([]string, 0, len(all))
	for ssid := range all {
		ssids = append(ssids, ssid)
	}
	sort.Strings(ssids)

	return ssids, cobra.ShellCompDirectiveNoFileComp
}
