// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Polls server.

Quickly Polls is a small polling site. Visitors see the latest published
questions, vote on one choice and view the results. Question authors use a
JSON API guarded by a per-question admin key.

# Starting the Server

	quickly-polls migrate -d ./polls.db
	quickly-polls load -d ./polls.db fixtures.yaml
	ADMIN_KEY_SALT=secret quickly-polls serve -d ./polls.db

Or against PostgreSQL:

	quickly-polls serve -t postgres -d "postgres://..." --admin-salt secret

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - ADMIN_KEY_SALT (--admin-salt): Secret for admin key HMAC (serve only)

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)

# Architecture

  - cli: Cobra commands (serve, migrate, load)
  - handlers: HTTP request handlers (polls, results, voting, admin)
  - router: Route definitions using Go 1.22+ routing
  - web: Embedded HTML templates
  - middleware: Logging, JSON helpers
  - models: Domain and request/response types
  - auth: Admin key and admin viewer checks
  - db: Connection, schema, fixtures
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
