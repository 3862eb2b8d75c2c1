package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nhle/smarttask/internal/credential"
	"github.com/nhle/smarttask/internal/logging"
	"github.com/nhle/smarttask/internal/model"
	"github.com/nhle/smarttask/internal/theme"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *model.AppConfig
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "smarttask",
	Short: "SmartTask productivity backend",
	Long: `SmartTask serves the tasks, habits and journal API and the AI
suggestion endpoint. Suggestions come from a local inference endpoint first
and fall back to Gemini when the local answer is unusable.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = model.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if verbose {
			cfg.Log.Level = "debug"
		}

		logger, err = logging.New(cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if err := credential.FillSecrets(cfg); err != nil {
			logger.Warn("keyring unavailable, using config and environment only", zap.Error(err))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", model.DefaultConfigPath(), "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd, migrateCmd, suggestCmd, credentialCmd, configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, theme.ErrorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}
