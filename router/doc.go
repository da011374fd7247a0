// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Tippspiel API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, cat, limiter, m)

# Endpoints

Operations:

	GET /health  - Liveness plus database ping
	GET /metrics - Prometheus metrics

Guests (public):

	GET  /api/catalog  - Event info and options per category
	GET  /api/overview - Submissions, scores, and distributions
	POST /api/submit   - Submit picks (once per device)
	GET  /api/me       - This device's submission

Admin session:

	POST /api/admin/login  - Exchange passphrase for session cookie
	POST /api/admin/logout - End session

Admin (requires session cookie):

	GET    /api/admin/results      - Stored results
	PUT    /api/admin/results      - Save results (until locked)
	POST   /api/admin/results/lock - Lock results
	GET    /api/admin/submissions  - List and search submissions
	DELETE /api/admin/submissions  - Delete by id or name
	POST   /api/admin/reset        - Delete all submissions and results
	GET    /api/admin/export/csv   - CSV export
	GET    /api/admin/export/xlsx  - Excel export

# Middleware

API routes are wrapped with WithLogging and WithMetrics. Metrics are
labeled with the matched route pattern, so the wrapping happens inside the
mux. CORS wraps the whole mux in main.
*/
package router
