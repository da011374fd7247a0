package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/tippspiel/catalog"
	"github.com/danielhkuo/tippspiel/cliparse"
	"github.com/danielhkuo/tippspiel/db"
	"github.com/danielhkuo/tippspiel/logging"
	"github.com/danielhkuo/tippspiel/metrics"
	"github.com/danielhkuo/tippspiel/middleware"
	"github.com/danielhkuo/tippspiel/ratelimit"
	"github.com/danielhkuo/tippspiel/router"
)

func main() {
	var err error

	// A missing .env is fine, real environment wins
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(logging.New(os.Stdout, cfg.LogLevel))

	// Load the option catalog
	cat := catalog.Default()
	if cfg.CatalogFile != "" {
		cat, err = catalog.Load(cfg.CatalogFile)
		if err != nil {
			slog.Error("catalog load failed", "path", cfg.CatalogFile, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("Catalog ready", "title", cat.Event.Title)

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Rate limiter, shared through Redis when configured
	var limiter ratelimit.Limiter
	if cfg.RedisURL != "" {
		client, err := ratelimit.NewRedisClient(context.Background(), cfg.RedisURL)
		if err != nil {
			slog.Error("redis connection failed", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		limiter = ratelimit.NewRedisLimiter(client, cfg.RateLimitMax, cfg.RateLimitWindow)
		slog.Info("Rate limiting via redis", "max", cfg.RateLimitMax, "window", cfg.RateLimitWindow)
	} else {
		limiter = ratelimit.NewMemoryLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)
		slog.Info("Rate limiting in memory", "max", cfg.RateLimitMax, "window", cfg.RateLimitWindow)
	}

	// Create router
	mux := router.NewRouter(dbConn, cfg, cat, limiter, metrics.NewMetrics())

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
