// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-polls/cliparse"
	"github.com/danielhkuo/quickly-polls/db"
)

// NewLoadCommand creates the load command.
func NewLoadCommand(cfg *cliparse.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "load <fixture.yaml>",
		Short: "Load questions and choices from a YAML fixture",
		Long: `Load questions and choices from a YAML fixture file.

Each question is published "days" days from now (negative for the past)
unless an explicit pub_date is given. The whole file is loaded in one
transaction.

Example fixture:
  questions:
    - text: "What's up?"
      days: -1
      choices:
        - text: Not much
        - text: The sky
          votes: 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Resolve(false); err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open fixture: %w", err)
			}
			defer f.Close()

			dbConn, err := db.Open(cmd.Context(), cfg.DatabaseType, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer dbConn.Close()

			if err := db.CreateSchema(cmd.Context(), dbConn); err != nil {
				return fmt.Errorf("schema creation failed: %w", err)
			}

			n, err := db.LoadFixtures(cmd.Context(), dbConn, f, time.Now())
			if err != nil {
				return err
			}
			slog.Info("Fixture loaded", "file", args[0], "questions", n)
			fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d questions\n", n)
			return nil
		},
	}
}
