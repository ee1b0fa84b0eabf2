// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-polls/cliparse"
	"github.com/danielhkuo/quickly-polls/db"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(cfg *cliparse.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Resolve(false); err != nil {
				return err
			}

			dbConn, err := db.Open(cmd.Context(), cfg.DatabaseType, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer dbConn.Close()

			if err := db.CreateSchema(cmd.Context(), dbConn); err != nil {
				return fmt.Errorf("schema creation failed: %w", err)
			}
			slog.Info("Database schema ready", "type", cfg.DatabaseType)
			return nil
		},
	}
}
