// Package cmd provides the command-line interface for stride.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stride",
	Short: "Stride CLI tool can perform common tasks related to training runs and their checkpoints.",
	Long: `Stride CLI tool can perform common tasks related to training runs and their checkpoints. ` +
		`It currently provides checkpoint directory maintenance (ckpt list, ckpt latest, ` +
		`ckpt inspect, ckpt prune), a demo training run (demo), and a monitor opener (monitor).`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
