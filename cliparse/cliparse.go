// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/tippspiel/auth"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string

	// AdminPassphraseHash is a bcrypt hash; the clear passphrase is never kept.
	AdminPassphraseHash string
	SessionTTL          time.Duration

	CatalogFile string
	RedisURL    string

	RateLimitMax    int
	RateLimitWindow time.Duration

	CookieSecure bool
	LogLevel     string
}

// IPSalt is the secret used to hash client addresses for rate limiting.
func (c Config) IPSalt() string {
	return c.AdminPassphraseHash
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var passphrase string
	var ttlHours int

	fs := flag.NewFlagSet("tippspiel", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.CatalogFile, "catalog", "", "Option catalog TOML file")
	fs.StringVar(&cfg.RedisURL, "redis", "", "Redis URL for shared rate limiting")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&passphrase, "admin-passphrase", "", "Admin passphrase (prefer env)")
	fs.IntVar(&ttlHours, "session-ttl", 0, "Admin session lifetime in hours")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		port, err := envInt("PORT", 3318)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.CatalogFile == "" {
		cfg.CatalogFile = os.Getenv("CATALOG_FILE")
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = os.Getenv("REDIS_URL")
	}

	// Secrets - one of passphrase or hash MUST be provided
	if passphrase == "" {
		passphrase = os.Getenv("ADMIN_PASSPHRASE")
	}
	switch {
	case passphrase != "":
		hash, err := auth.HashPassphrase(passphrase, bcrypt.DefaultCost)
		if err != nil {
			return Config{}, err
		}
		cfg.AdminPassphraseHash = hash
	case os.Getenv("ADMIN_PASSPHRASE_HASH") != "":
		cfg.AdminPassphraseHash = os.Getenv("ADMIN_PASSPHRASE_HASH")
		if _, err := bcrypt.Cost([]byte(cfg.AdminPassphraseHash)); err != nil {
			return Config{}, fmt.Errorf("invalid ADMIN_PASSPHRASE_HASH: %w", err)
		}
	default:
		return Config{}, errors.New("ADMIN_PASSPHRASE or ADMIN_PASSPHRASE_HASH required")
	}

	if ttlHours == 0 {
		hours, err := envInt("ADMIN_SESSION_TTL_HOURS", 8)
		if err != nil {
			return Config{}, err
		}
		ttlHours = hours
	}
	if ttlHours <= 0 {
		return Config{}, errors.New("admin session TTL must be positive")
	}
	cfg.SessionTTL = time.Duration(ttlHours) * time.Hour

	max, err := envInt("RATE_LIMIT_MAX", 6)
	if err != nil {
		return Config{}, err
	}
	windowSeconds, err := envInt("RATE_LIMIT_WINDOW_SECONDS", 60)
	if err != nil {
		return Config{}, err
	}
	if max <= 0 || windowSeconds <= 0 {
		return Config{}, errors.New("rate limit values must be positive")
	}
	cfg.RateLimitMax = max
	cfg.RateLimitWindow = time.Duration(windowSeconds) * time.Second

	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, errors.New("invalid COOKIE_SECURE env variable")
		}
		cfg.CookieSecure = secure
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

func envInt(name string, def int) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", name)
	}
	return n, nil
}
