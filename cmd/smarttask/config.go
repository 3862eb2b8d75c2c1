package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nhle/smarttask/internal/model"
	"github.com/nhle/smarttask/internal/theme"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration, without secrets, to --config",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(configPath); err == nil && !force {
			return fmt.Errorf("%s already exists; use --force to overwrite", configPath)
		}

		if err := model.SaveConfig(configPath, cfg); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), theme.SuccessStyle.Render("Wrote "+configPath))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), configPath)
	},
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd, configPathCmd)
}
