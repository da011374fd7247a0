// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and storage types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitRequest: name plus one pick per category
  - ResultsRequest: the six official answers
  - LoginRequest: admin passphrase

Picks are validated against the catalog with the "option" tag, see package
validation.

# Response Types

  - SubmitResponse: ok, submission_id
  - MeResponse: the caller's own submission or null
  - ResultsResponse: stored result set or null
  - LockResponse: ok, lockedAt
  - SubmissionsResponse: admin listing including normalized names
  - DeleteResponse: ok, deleted
  - CatalogResponse: event info and ordered options per category
  - ErrorResponse: error, message, fields

The overview itself is scoring.Overview and is encoded as is.

# Constants

	ResultsID        = "global-results"
	SubmissionCookie = "sb_party_submission_id"
	AdminCookie      = "sb_party_admin_session"
*/
package models
