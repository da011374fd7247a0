// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start at debug level (method, path, remote) and completion
(status, duration_ms).

# Metrics

Record request count, duration and in-flight requests per route:

	mux.HandleFunc("POST /api/submit", middleware.WithMetrics(m, handler))

The route label is the ServeMux pattern, so WithMetrics has to sit inside
the mux rather than around it.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type and Authorization. Credentials are allowed so the device and
admin cookies travel with cross-origin requests.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.ValidationErrorResponse(w, map[string]string{"name": "is required"})

Parse JSON request bodies:

	var req models.SubmitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used to build the hashed rate limit key for submissions.
*/
package middleware
