// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and manages its schema and seed data.

# Connections

Open picks the driver from the configured database type:

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)

  - sqlite: modernc.org/sqlite (pure Go, the default)
  - postgres: github.com/lib/pq

SQLite connections are limited to a single open connection and have
foreign keys enabled.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - question: prompt text and publication date
  - choice: answers with their vote counters

	question 1──* choice

Deleting a question cascades to its choices.

# Fixtures

LoadFixtures seeds questions and choices from YAML:

	questions:
	  - text: "What's new?"
	    days: -1
	    choices:
	      - text: Not much
	      - text: The sky
	        votes: 3

days offsets the publication date from now. pub_date sets it absolutely
and takes precedence.
*/
package db
