// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps carry no database defaults; handlers always pass them so the
// same statements run on SQLite and PostgreSQL.
const schema = `
-- Submissions
CREATE TABLE IF NOT EXISTS submission (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    name_normalized TEXT NOT NULL,
    winner TEXT NOT NULL,
    over_under TEXT NOT NULL,
    mvp TEXT NOT NULL,
    receiving TEXT NOT NULL,
    rushing TEXT NOT NULL,
    bad_bunny TEXT NOT NULL,
    patriots_love TEXT NOT NULL,
    ip_hash TEXT,
    user_agent TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_submission_name_normalized ON submission(name_normalized);
CREATE INDEX IF NOT EXISTS idx_submission_created_at ON submission(created_at);

-- Official results (single row)
CREATE TABLE IF NOT EXISTS result_set (
    id TEXT PRIMARY KEY,
    winner TEXT,
    over_under TEXT,
    mvp TEXT,
    receiving TEXT,
    rushing TEXT,
    bad_bunny TEXT,
    locked_at TIMESTAMP,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

-- Admin sessions
CREATE TABLE IF NOT EXISTS admin_session (
    id TEXT PRIMARY KEY,
    expires_at TIMESTAMP NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_admin_session_expires_at ON admin_session(expires_at);
`
