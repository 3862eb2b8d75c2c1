package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nhle/smarttask/internal/store"
	"github.com/nhle/smarttask/internal/theme"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.NewSQLiteStore(cfg.Database.Path)
		if err != nil {
			return err
		}
		defer s.Close()

		version, err := s.SchemaVersion()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), theme.SuccessStyle.Render(
			fmt.Sprintf("%s is at schema version %d", cfg.Database.Path, version),
		))
		return nil
	},
}
