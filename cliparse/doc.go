// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: SQLite file or PostgreSQL connection string (required)
  - DatabaseType: sqlite (default) or postgres
  - AdminPassphraseHash: bcrypt hash of the admin passphrase (required)
  - SessionTTL: Admin session lifetime (default: 8h)
  - CatalogFile: Optional TOML catalog, the embedded one is used otherwise
  - RedisURL: Optional, switches rate limiting to Redis
  - RateLimitMax / RateLimitWindow: Submit attempts per client (default: 6 per 60s)
  - CookieSecure: Set the Secure attribute on cookies
  - LogLevel: debug, info, warn or error

# CLI Flags

	-p                 Server port
	-d                 Database URL
	-t                 Database type
	-catalog           Catalog file
	-redis             Redis URL
	-admin-passphrase  Admin passphrase
	-session-ttl       Admin session lifetime in hours

# Environment Variables

Flags fall back to environment variables:

	PORT                    → -p
	DATABASE_URL            → -d
	DATABASE_TYPE           → -t
	CATALOG_FILE            → -catalog
	REDIS_URL               → -redis
	ADMIN_PASSPHRASE        → -admin-passphrase
	ADMIN_SESSION_TTL_HOURS → -session-ttl

These only exist as environment variables:

	ADMIN_PASSPHRASE_HASH      precomputed bcrypt hash, used when no passphrase is given
	RATE_LIMIT_MAX
	RATE_LIMIT_WINDOW_SECONDS
	COOKIE_SECURE
	LOG_LEVEL

CLI flags take precedence over environment variables. main loads a .env file
before parsing, so local development can keep everything there.

# Validation

ParseFlags returns an error if required values are missing or malformed:

  - DATABASE_URL must be provided
  - ADMIN_PASSPHRASE or a valid ADMIN_PASSPHRASE_HASH must be provided
  - numeric settings must parse and be positive
*/
package cliparse
