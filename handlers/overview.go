// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/tippspiel/catalog"
	"github.com/danielhkuo/tippspiel/middleware"
	"github.com/danielhkuo/tippspiel/models"
	"github.com/danielhkuo/tippspiel/scoring"
)

type OverviewHandler struct {
	db      *sql.DB
	catalog *catalog.Catalog
}

func NewOverviewHandler(db *sql.DB, cat *catalog.Catalog) *OverviewHandler {
	return &OverviewHandler{db: db, catalog: cat}
}

// GetOverview handles GET /api/overview
func (h *OverviewHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := buildOverview(r.Context(), h.db, h.catalog)
	if err != nil {
		slog.Error("failed to build overview", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ov)
}

// GetCatalog handles GET /api/catalog
func (h *OverviewHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	resp := models.CatalogResponse{
		Event:      h.catalog.Event,
		Categories: make([]models.CategoryInfo, 0, len(catalog.Categories)),
	}
	for _, c := range catalog.Categories {
		resp.Categories = append(resp.Categories, models.CategoryInfo{
			Key:     c,
			Label:   h.catalog.Label(c),
			Scored:  c.Scored(),
			Options: h.catalog.Options(c),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// buildOverview loads a snapshot of submissions and results and scores it.
func buildOverview(ctx context.Context, db *sql.DB, cat *catalog.Catalog) (scoring.Overview, error) {
	submissions, err := loadSubmissionsOldestFirst(ctx, db)
	if err != nil {
		return scoring.Overview{}, err
	}

	rec, err := loadResultRecord(ctx, db)
	if err != nil {
		return scoring.Overview{}, err
	}

	return scoring.BuildOverview(cat, submissions, resultSet(rec)), nil
}
