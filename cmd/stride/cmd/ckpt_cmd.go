package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/strideml/stride/checkpoint/resolve"
)

var ckptCmd = &cobra.Command{
	Use:   "ckpt",
	Short: "Maintain a checkpoint directory",
}

var ckptListCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List the checkpoints in a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		entries, err := resolve.List(ckptDir(args))
		if err != nil {
			return err
		}

		for _, e := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\t%s\n",
				e.Epoch, e.ByteSize, e.Path)
		}

		return nil
	},
}

var ckptLatestCmd = &cobra.Command{
	Use:   "latest [dir]",
	Short: "Print the path of the most recent checkpoint",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		suffix, _ := cmd.Flags().GetString("suffix")

		resolver := resolve.FileResolver{Suffix: suffix}

		path, err := resolver.Latest(ckptDir(args))
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)

		return nil
	},
}

var ckptInspectCmd = &cobra.Command{
	Use:   "inspect <path>",
	Short: "Show the states stored in a checkpoint artifact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()

		var data map[string]any

		err = json.NewDecoder(file).Decode(&data)
		if err != nil {
			return fmt.Errorf("decode checkpoint artifact: %w", err)
		}

		names := make([]string, 0, len(data))
		for name := range data {
			names = append(names, name)
		}

		sort.Strings(names)

		for _, name := range names {
			if section, ok := data[name].(map[string]any); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d entries\n",
					name, len(section))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%v\n", name, data[name])
			}
		}

		return nil
	},
}

var ckptPruneCmd = &cobra.Command{
	Use:   "prune [dir]",
	Short: "Remove all but the most recent checkpoints",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		keep, _ := cmd.Flags().GetInt("keep")
		if keep < 1 {
			return fmt.Errorf("keep must be positive, got %d", keep)
		}

		entries, err := resolve.List(ckptDir(args))
		if err != nil {
			return err
		}

		if len(entries) <= keep {
			return nil
		}

		for _, e := range entries[:len(entries)-keep] {
			err := os.Remove(e.Path)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", e.Path)
		}

		return nil
	},
}

func ckptDir(args []string) string {
	if len(args) == 1 {
		return args[0]
	}

	cfg, err := LoadConfig()
	if err != nil {
		return resolve.DefaultDir
	}

	return cfg.CheckpointDir
}

func init() {
	ckptLatestCmd.Flags().String("suffix", "",
		"only consider checkpoints with this suffix")
	ckptPruneCmd.Flags().Int("keep", 3,
		"number of most recent checkpoints to keep")

	ckptCmd.AddCommand(ckptListCmd)
	ckptCmd.AddCommand(ckptLatestCmd)
	ckptCmd.AddCommand(ckptInspectCmd)
	ckptCmd.AddCommand(ckptPruneCmd)
	rootCmd.AddCommand(ckptCmd)
}
