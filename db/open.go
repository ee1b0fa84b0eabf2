// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quickly-polls/cliparse"
)

// driverName maps a configured database type to its database/sql driver.
func driverName(databaseType string) (string, error) {
	switch databaseType {
	case cliparse.DatabasePostgres:
		return "postgres", nil
	case cliparse.DatabaseSQLite, "":
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported database type %q", databaseType)
	}
}

// Open connects to the configured database and verifies the connection.
func Open(ctx context.Context, databaseType, databaseURL string) (*sql.DB, error) {
	driver, err := driverName(databaseType)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == "sqlite" {
		// SQLite only supports one writer at a time, and every
		// connection to :memory: is a separate database.
		conn.SetMaxOpenConns(1)
		conn.SetMaxIdleConns(1)

		if _, err := conn.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return conn, nil
}
