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
	"github.com/danielhkuo/tippspiel/ratelimit"
	"github.com/danielhkuo/tippspiel/validation"
)

// submissionCookieMaxAge keeps the device cookie for 30 days.
const submissionCookieMaxAge = 30 * 24 * 60 * 60

type SubmissionHandler struct {
	db        *sql.DB
	cfg       cliparse.Config
	validator *validation.Validator
	limiter   ratelimit.Limiter
	metrics   *metrics.Metrics
	now       func() time.Time
}

func NewSubmissionHandler(db *sql.DB, cfg cliparse.Config, cat *catalog.Catalog, limiter ratelimit.Limiter, m *metrics.Metrics) *SubmissionHandler {
	return &SubmissionHandler{
		db:        db,
		cfg:       cfg,
		validator: validation.New(cat),
		limiter:   limiter,
		metrics:   m,
		now:       time.Now,
	}
}

// Submit handles POST /api/submit
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// One submission per device
	if c, err := r.Cookie(models.SubmissionCookie); err == nil && c.Value != "" {
		var exists int
		err := h.db.QueryRowContext(ctx, "SELECT 1 FROM submission WHERE id = $1", c.Value).Scan(&exists)
		if err == nil {
			h.metrics.SubmitsRejected.WithLabelValues("device").Inc()
			middleware.ErrorResponse(w, http.StatusConflict, "Already submitted from this device")
			return
		}
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("failed to check device submission", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
	}

	// Rate limit per client address, fail open
	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.IPSalt())
	allowed, err := h.limiter.Allow(ctx, ipHash)
	if err != nil {
		slog.Warn("rate limiter unavailable, allowing request", "error", err)
		allowed = true
	}
	if !allowed {
		h.metrics.SubmitsRejected.WithLabelValues("rate_limited").Inc()
		middleware.ErrorResponse(w, http.StatusTooManyRequests, "Too many requests, please wait a moment")
		return
	}

	var req models.SubmitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		h.metrics.SubmitsRejected.WithLabelValues("invalid").Inc()
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := h.validator.Validate(req); err != nil {
		var fields validation.FieldErrors
		if errors.As(err, &fields) {
			h.metrics.SubmitsRejected.WithLabelValues("invalid").Inc()
			middleware.ValidationErrorResponse(w, fields)
			return
		}
		slog.Error("failed to validate submission", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Validation error")
		return
	}

	// Same name modulo case and accents counts as taken
	nameNormalized := names.Normalize(req.Name)
	var taken int
	err = h.db.QueryRowContext(ctx, "SELECT 1 FROM submission WHERE name_normalized = $1 LIMIT 1", nameNormalized).Scan(&taken)
	if err == nil {
		h.metrics.SubmitsRejected.WithLabelValues("name_taken").Inc()
		middleware.ErrorResponse(w, http.StatusConflict, "Name already taken, please choose another")
		return
	}
	if !errors.Is(err, sql.ErrNoRows) {
		slog.Error("failed to check name", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	submissionID, err := auth.NewSubmissionID()
	if err != nil {
		slog.Error("failed to generate submission ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save submission")
		return
	}

	p := req.Picks()
	_, err = h.db.ExecContext(ctx, `
		INSERT INTO submission (id, name, name_normalized, winner, over_under, mvp, receiving, rushing, bad_bunny, patriots_love, ip_hash, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, submissionID, req.Name, nameNormalized,
		p.Winner, p.OverUnder, p.MVP, p.Receiving, p.Rushing, p.BadBunny, p.PatriotsLove,
		ipHash, r.UserAgent(), h.now().UTC())
	if err != nil {
		slog.Error("failed to insert submission", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save submission")
		return
	}

	h.metrics.SubmissionsCreated.Inc()
	slog.Info("submission created", "submission_id", submissionID, "name", req.Name)

	http.SetCookie(w, &http.Cookie{
		Name:     models.SubmissionCookie,
		Value:    submissionID,
		Path:     "/",
		MaxAge:   submissionCookieMaxAge,
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResponse{
		OK:           true,
		SubmissionID: submissionID,
	})
}

// Me handles GET /api/me
func (h *SubmissionHandler) Me(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(models.SubmissionCookie)
	if err != nil || c.Value == "" {
		middleware.JSONResponse(w, http.StatusOK, models.MeResponse{})
		return
	}

	submission, err := loadSubmission(r.Context(), h.db, c.Value)
	if err != nil {
		slog.Error("failed to load own submission", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MeResponse{Submission: submission})
}
