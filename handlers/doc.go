// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Tippspiel API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - SubmissionHandler: Guest submissions and the device's own entry
  - OverviewHandler: Live overview and the option catalog
  - AdminHandler: Admin session, results, moderation, and exports

Handlers are created via constructor functions:

	submit := handlers.NewSubmissionHandler(db, cfg, cat, limiter, m)
	overview := handlers.NewOverviewHandler(db, cat)

# Submitting

	POST /api/submit → Submit (one per device, rate limited per IP)
	GET  /api/me     → Me (the device's submission or null)

A device is recognized by the sb_party_submission_id cookie. Names must be
unique after case and accent folding.

# Overview

	GET /api/overview → GetOverview
	GET /api/catalog  → GetCatalog

Scores appear only once every scoring category has an official answer.
Submissions are listed oldest first.

# Admin

Admin routes require the sb_party_admin_session cookie issued by Login:

	POST   /api/admin/login         → Login
	POST   /api/admin/logout        → Logout
	GET    /api/admin/results       → GetResults
	PUT    /api/admin/results       → PutResults (409 once locked)
	POST   /api/admin/results/lock  → LockResults
	GET    /api/admin/submissions   → ListSubmissions (?q= search)
	DELETE /api/admin/submissions   → DeleteSubmissions (?id= or ?name=)
	POST   /api/admin/reset         → Reset
	GET    /api/admin/export/csv    → ExportCSV
	GET    /api/admin/export/xlsx   → ExportXLSX

Wrap admin handlers with RequireSession.
*/
package handlers
