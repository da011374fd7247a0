// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/tippspiel/auth"
	"github.com/danielhkuo/tippspiel/catalog"
	"github.com/danielhkuo/tippspiel/cliparse"
	"github.com/danielhkuo/tippspiel/metrics"
	"github.com/danielhkuo/tippspiel/middleware"
	"github.com/danielhkuo/tippspiel/models"
	"github.com/danielhkuo/tippspiel/names"
	"github.com/danielhkuo/tippspiel/validation"
)

type AdminHandler struct {
	db        *sql.DB
	cfg       cliparse.Config
	catalog   *catalog.Catalog
	validator *validation.Validator
	metrics   *metrics.Metrics
	now       func() time.Time
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config, cat *catalog.Catalog, m *metrics.Metrics) *AdminHandler {
	return &AdminHandler{
		db:        db,
		cfg:       cfg,
		catalog:   cat,
		validator: validation.New(cat),
		metrics:   m,
		now:       time.Now,
	}
}

// Login handles POST /api/admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := auth.CheckPassphrase(h.cfg.AdminPassphraseHash, req.Password); err != nil {
		h.metrics.AdminLogins.WithLabelValues("failure").Inc()
		slog.Warn("admin login failed", "remote", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Wrong passphrase")
		return
	}

	ctx := r.Context()
	now := h.now().UTC()

	// Drop sessions that can no longer be used
	if _, err := h.db.ExecContext(ctx, "DELETE FROM admin_session WHERE expires_at < $1", now); err != nil {
		slog.Warn("failed to purge expired sessions", "error", err)
	}

	sessionID, err := auth.NewSessionID()
	if err != nil {
		slog.Error("failed to generate session ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	expiresAt := now.Add(h.cfg.SessionTTL)
	_, err = h.db.ExecContext(ctx, `
		INSERT INTO admin_session (id, expires_at, created_at)
		VALUES ($1, $2, $3)
	`, sessionID, expiresAt, now)
	if err != nil {
		slog.Error("failed to insert admin session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	h.metrics.AdminLogins.WithLabelValues("success").Inc()
	slog.Info("admin logged in", "expires_at", expiresAt)

	http.SetCookie(w, &http.Cookie{
		Name:     models.AdminCookie,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(h.cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}

// Logout handles POST /api/admin/logout
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(models.AdminCookie); err == nil && c.Value != "" {
		if _, err := h.db.ExecContext(r.Context(), "DELETE FROM admin_session WHERE id = $1", c.Value); err != nil {
			slog.Error("failed to delete admin session", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     models.AdminCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}

// RequireSession rejects requests without a valid, unexpired admin session
func (h *AdminHandler) RequireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(models.AdminCookie)
		if err != nil || c.Value == "" {
			middleware.ErrorResponse(w, http.StatusUnauthorized, "Admin session required")
			return
		}

		var expiresAt time.Time
		err = h.db.QueryRowContext(r.Context(), "SELECT expires_at FROM admin_session WHERE id = $1", c.Value).Scan(&expiresAt)
		if errors.Is(err, sql.ErrNoRows) {
			middleware.ErrorResponse(w, http.StatusUnauthorized, "Admin session required")
			return
		}
		if err != nil {
			slog.Error("failed to load admin session", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}

		if !h.now().Before(expiresAt) {
			middleware.ErrorResponse(w, http.StatusUnauthorized, "Admin session expired")
			return
		}

		next(w, r)
	}
}

// GetResults handles GET /api/admin/results
func (h *AdminHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	rec, err := loadResultRecord(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to load results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{Results: rec})
}

// PutResults handles PUT /api/admin/results
func (h *AdminHandler) PutResults(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	existing, err := loadResultRecord(ctx, h.db)
	if err != nil {
		slog.Error("failed to load results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if existing != nil && existing.LockedAt != nil {
		middleware.ErrorResponse(w, http.StatusConflict, "Results are locked")
		return
	}

	var req models.ResultsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.validator.Validate(req); err != nil {
		var fields validation.FieldErrors
		if errors.As(err, &fields) {
			middleware.ValidationErrorResponse(w, fields)
			return
		}
		slog.Error("failed to validate results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Validation error")
		return
	}

	// The WHERE clause keeps a lock taken since the check above
	answers := req.Results()
	now := h.now().UTC()
	res, err := h.db.ExecContext(ctx, `
		INSERT INTO result_set (id, winner, over_under, mvp, receiving, rushing, bad_bunny, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			winner = excluded.winner,
			over_under = excluded.over_under,
			mvp = excluded.mvp,
			receiving = excluded.receiving,
			rushing = excluded.rushing,
			bad_bunny = excluded.bad_bunny,
			updated_at = excluded.updated_at
		WHERE result_set.locked_at IS NULL
	`, models.ResultsID, answers.Winner, answers.OverUnder, answers.MVP, answers.Receiving, answers.Rushing, answers.BadBunny, now, now)
	if err != nil {
		slog.Error("failed to save results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save results")
		return
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		middleware.ErrorResponse(w, http.StatusConflict, "Results are locked")
		return
	}

	rec, err := loadResultRecord(ctx, h.db)
	if err != nil {
		slog.Error("failed to reload results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("results saved", "complete", rec != nil && rec.Complete())
	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{Results: rec})
}

// LockResults handles POST /api/admin/results/lock
func (h *AdminHandler) LockResults(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rec, err := loadResultRecord(ctx, h.db)
	if err != nil {
		slog.Error("failed to load results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if rec == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Save results first")
		return
	}

	// Locking twice is a no-op that reports the original time
	if rec.LockedAt != nil {
		middleware.JSONResponse(w, http.StatusOK, models.LockResponse{OK: true, LockedAt: rec.LockedAt})
		return
	}

	now := h.now().UTC()
	_, err = h.db.ExecContext(ctx, `
		UPDATE result_set SET locked_at = $1, updated_at = $2
		WHERE id = $3 AND locked_at IS NULL
	`, now, now, models.ResultsID)
	if err != nil {
		slog.Error("failed to lock results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to lock results")
		return
	}

	rec, err = loadResultRecord(ctx, h.db)
	if err != nil || rec == nil {
		slog.Error("failed to reload results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("results locked", "locked_at", rec.LockedAt)
	middleware.JSONResponse(w, http.StatusOK, models.LockResponse{OK: true, LockedAt: rec.LockedAt})
}

// ListSubmissions handles GET /api/admin/submissions?q=
func (h *AdminHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))

	query := `SELECT ` + submissionColumns + ` FROM submission`
	var args []any
	if q != "" {
		query += ` WHERE name LIKE $1 ESCAPE '\' OR name_normalized LIKE $2 ESCAPE '\'`
		args = append(args, likePattern(q), likePattern(names.Normalize(q)))
	}
	query += ` ORDER BY created_at DESC, id DESC`

	submissions, err := querySubmissions(r.Context(), h.db, query, args...)
	if err != nil {
		slog.Error("failed to list submissions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	resp := models.SubmissionsResponse{Submissions: make([]models.AdminSubmission, 0, len(submissions))}
	for _, s := range submissions {
		resp.Submissions = append(resp.Submissions, models.AdminSubmission{
			Submission:     s,
			NameNormalized: s.NameNormalized,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// DeleteSubmissions handles DELETE /api/admin/submissions?id=|name=
func (h *AdminHandler) DeleteSubmissions(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	name := strings.TrimSpace(r.URL.Query().Get("name"))

	var (
		res sql.Result
		err error
	)
	switch {
	case id != "":
		res, err = h.db.ExecContext(r.Context(), "DELETE FROM submission WHERE id = $1", id)
	case name != "":
		res, err = h.db.ExecContext(r.Context(), "DELETE FROM submission WHERE name_normalized = $1", names.Normalize(name))
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "id or name is required")
		return
	}
	if err != nil {
		slog.Error("failed to delete submissions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete submissions")
		return
	}

	deleted, _ := res.RowsAffected()
	slog.Info("submissions deleted", "id", id, "name", name, "count", deleted)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteResponse{OK: true, Deleted: deleted})
}

// Reset handles POST /api/admin/reset
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM submission"); err != nil {
		slog.Error("failed to delete submissions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset")
		return
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM result_set WHERE id = $1", models.ResultsID); err != nil {
		slog.Error("failed to delete results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit reset", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset")
		return
	}

	slog.Warn("all submissions and results deleted")
	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}
