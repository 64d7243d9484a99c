package cmd

import (
	"os"

	"netconnect/internal/config"
	"netconnect/internal/logwatcher"

	"github.com/spf13/cobra"
)

var logsFollow bool

// logsCmd represents the logs command
var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Shows the connect attempt log",
	Long: `Shows the application log, including boot-time connect attempts made by the
startup entry. With --follow the log is tailed until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}

		if logsFollow {
			return logwatcher.Follow(cfg.GetLogPath(), os.Stdout)
		}
		return logwatcher.Print(cfg.GetLogPath(), os.Stdout)
	},
}

func init() {
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "keep the log open and print new lines as they appear")
	rootCmd.AddCommand(logsCmd)
}
