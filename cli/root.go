// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-polls/cliparse"
)

// NewRootCommand creates the root command for the polls server.
func NewRootCommand() *cobra.Command {
	cfg := &cliparse.Config{}

	cmd := &cobra.Command{
		Use:   "quickly-polls",
		Short: "Quickly Polls - a small polling site",
		Long: `Quickly Polls serves published questions, lets visitors vote on
them and shows the results.

Configuration comes from flags, then environment variables, then an
optional dotenv file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(os.Stderr, cfg.Verbose)
		},
	}

	// Global flags
	cliparse.BindFlags(cmd.PersistentFlags(), cfg)

	// Add subcommands
	cmd.AddCommand(NewServeCommand(cfg))
	cmd.AddCommand(NewMigrateCommand(cfg))
	cmd.AddCommand(NewLoadCommand(cfg))

	return cmd
}

// setupLogger installs the default slog logger. Terminals get the text
// handler, everything else gets JSON.
func setupLogger(w io.Writer, verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}
