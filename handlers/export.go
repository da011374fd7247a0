// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/tippspiel/catalog"
	"github.com/danielhkuo/tippspiel/export"
	"github.com/danielhkuo/tippspiel/middleware"
	"github.com/danielhkuo/tippspiel/scoring"
)

type exportFunc func(io.Writer, *catalog.Catalog, scoring.Overview) error

// ExportCSV handles GET /api/admin/export/csv
func (h *AdminHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	h.writeExport(w, r, "csv", export.CSVContentType, export.WriteCSV)
}

// ExportXLSX handles GET /api/admin/export/xlsx
func (h *AdminHandler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	h.writeExport(w, r, "xlsx", export.XLSXContentType, export.WriteXLSX)
}

// writeExport renders into memory first so a failure can still become a
// JSON error instead of a truncated download.
func (h *AdminHandler) writeExport(w http.ResponseWriter, r *http.Request, ext, contentType string, write exportFunc) {
	ov, err := buildOverview(r.Context(), h.db, h.catalog)
	if err != nil {
		slog.Error("failed to build overview for export", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var buf bytes.Buffer
	if err := write(&buf, h.catalog, ov); err != nil {
		slog.Error("failed to render export", "format", ext, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Export failed")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.Filename(h.catalog, ext)))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write export", "format", ext, "error", err)
	}
}
