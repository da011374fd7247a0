// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles connections and schema creation.

# Connecting

Open picks the driver from the configured database type and pings it:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

The sqlite type uses modernc.org/sqlite, postgres uses lib/pq. The driver
packages are imported by main.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - submission: One row per participant, immutable after insert
  - result_set: The official answers, a single row with id 'global-results'
  - admin_session: Logged in admin browsers with an expiry

Submission names are unique per normalized form, checked by the submit
handler rather than by an index.

# Indexes

  - submission.name_normalized
  - submission.created_at
  - admin_session.expires_at
*/
package db
