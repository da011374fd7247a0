// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Tippspiel API server.

Tippspiel is a Super Bowl party prediction poll. Guests submit picks once per
device, the host enters the official results, and everyone watches a live
overview with scores, leaders, and pick distributions.

# Starting the Server

The server reads environment variables (optionally from a .env file) or CLI
flags:

	DATABASE_URL=tippspiel.db ADMIN_PASSPHRASE=secret go run .

Or with flags:

	go run . -p 3318 -d "postgres://..." -t postgres -admin-passphrase secret

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file or PostgreSQL connection string
  - ADMIN_PASSPHRASE (-admin-passphrase) or ADMIN_PASSPHRASE_HASH: admin login

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - CATALOG_FILE (-catalog): TOML option catalog (default: built in)
  - REDIS_URL (-redis): Share rate limits across instances
  - ADMIN_SESSION_TTL_HOURS (-session-ttl): Admin session lifetime (default: 8)
  - RATE_LIMIT_MAX, RATE_LIMIT_WINDOW_SECONDS: Submissions per IP (default: 6 per 60s)
  - COOKIE_SECURE: Mark cookies Secure
  - LOG_LEVEL: debug, info, warn, or error

# Architecture

  - handlers: HTTP request handlers (submit, overview, admin, export)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, JSON helpers
  - scoring: Scores, leaders, and distributions
  - catalog: Categories and their options
  - names: Name normalization for uniqueness
  - validation: Request validation against the catalog
  - export: CSV and XLSX rendering
  - ratelimit: In-memory and Redis fixed window limiters
  - metrics: Prometheus collectors
  - logging: slog setup
  - auth: Passphrase hashing and ID generation
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
