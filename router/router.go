// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/tippspiel/catalog"
	"github.com/danielhkuo/tippspiel/cliparse"
	"github.com/danielhkuo/tippspiel/handlers"
	"github.com/danielhkuo/tippspiel/metrics"
	"github.com/danielhkuo/tippspiel/middleware"
	"github.com/danielhkuo/tippspiel/ratelimit"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, cat *catalog.Catalog, limiter ratelimit.Limiter, m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	submitHandler := handlers.NewSubmissionHandler(db, cfg, cat, limiter, m)
	overviewHandler := handlers.NewOverviewHandler(db, cat)
	adminHandler := handlers.NewAdminHandler(db, cfg, cat, m)

	handle := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.WithLogging(middleware.WithMetrics(m, h)))
	}
	admin := func(pattern string, h http.HandlerFunc) {
		handle(pattern, adminHandler.RequireSession(h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.Handle("GET /metrics", m.Handler(db))

	// Guest operations (public)
	handle("GET /api/catalog", overviewHandler.GetCatalog)
	handle("GET /api/overview", overviewHandler.GetOverview)
	handle("POST /api/submit", submitHandler.Submit)
	handle("GET /api/me", submitHandler.Me)

	// Admin session
	handle("POST /api/admin/login", adminHandler.Login)
	handle("POST /api/admin/logout", adminHandler.Logout)

	// Admin operations (require session cookie)
	admin("GET /api/admin/results", adminHandler.GetResults)
	admin("PUT /api/admin/results", adminHandler.PutResults)
	admin("POST /api/admin/results/lock", adminHandler.LockResults)
	admin("GET /api/admin/submissions", adminHandler.ListSubmissions)
	admin("DELETE /api/admin/submissions", adminHandler.DeleteSubmissions)
	admin("POST /api/admin/reset", adminHandler.Reset)
	admin("GET /api/admin/export/csv", adminHandler.ExportCSV)
	admin("GET /api/admin/export/xlsx", adminHandler.ExportXLSX)

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("tippspiel API v1"))
	})

	return mux
}
