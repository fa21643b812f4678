package cmd

import (
	"fmt"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Open the monitoring page of a running training job",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.SilenceUsage = true

		port, _ := cmd.Flags().GetInt("port")
		if port == 0 {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}

			port = cfg.MonitorPort
		}

		if port == 0 {
			return fmt.Errorf(
				"no monitor port configured, set --port or STRIDE_MONITOR_PORT")
		}

		return browser.OpenURL(fmt.Sprintf("http://localhost:%d/api/progress",
			port))
	},
}

func init() {
	monitorCmd.Flags().Int("port", 0, "port of the monitoring server")
	rootCmd.AddCommand(monitorCmd)
}
