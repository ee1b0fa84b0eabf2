// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cli implements the quickly-polls command line.

# Commands

	serve          Start the HTTP server (creates the schema first)
	migrate        Create the database schema and exit
	load FILE      Load questions and choices from a YAML fixture

# Global Flags

All commands share the configuration flags from cliparse:

	-p, --port           Server port (PORT, default 3318)
	-d, --database-url   Database URL or SQLite path (DATABASE_URL)
	-t, --database-type  sqlite or postgres (DATABASE_TYPE, default sqlite)
	    --admin-salt     Admin key salt (ADMIN_KEY_SALT, serve only)
	    --env-file       Dotenv file read before the environment (default .env)
	-v, --verbose        Debug logging

Logs go to stderr, as text on a terminal and as JSON otherwise.
*/
package cli
