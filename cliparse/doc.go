// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line flags and configuration.

# Configuration

BindFlags registers the flags on any pflag.FlagSet, which lets the cobra
root command share them with every subcommand. Resolve then fills in the
rest:

	cliparse.BindFlags(cmd.PersistentFlags(), &cfg)
	// after parsing
	err := cfg.Resolve(true)

ParseFlags does both for a plain argument list:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: SQLite path or PostgreSQL connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - AdminKeySalt: Secret for admin key HMAC
  - EnvFile: Dotenv file loaded before reading the environment
  - Verbose: Debug logging

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	ADMIN_KEY_SALT → --admin-salt

CLI flags take precedence over environment variables, and exported
variables take precedence over the dotenv file. A missing dotenv file is
not an error.

# Validation

Resolve returns an error if:

  - DATABASE_URL is missing
  - DATABASE_TYPE is not sqlite or postgres
  - ADMIN_KEY_SALT is missing and secrets are required
*/
package cliparse
