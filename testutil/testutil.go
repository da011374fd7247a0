// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/tippspiel/auth"
	"github.com/danielhkuo/tippspiel/cliparse"
	"github.com/danielhkuo/tippspiel/db"
	"github.com/danielhkuo/tippspiel/models"
	"github.com/danielhkuo/tippspiel/names"
	"github.com/danielhkuo/tippspiel/scoring"
)

// TestPassphrase is the admin passphrase accepted by GetTestConfig.
const TestPassphrase = "test-passphrase"

var (
	hashOnce sync.Once
	testHash string
)

// SetupTestDB opens a private in-memory SQLite database with the full schema.
// It is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Every connection to :memory: is a separate database
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	hashOnce.Do(func() {
		h, err := bcrypt.GenerateFromPassword([]byte(TestPassphrase), bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
		testHash = string(h)
	})

	return cliparse.Config{
		Port:                3318,
		DatabaseURL:         ":memory:",
		DatabaseType:        "sqlite",
		AdminPassphraseHash: testHash,
		SessionTTL:          8 * time.Hour,
		RateLimitMax:        6,
		RateLimitWindow:     time.Minute,
		LogLevel:            "error",
	}
}

// ValidPicks returns picks that pass validation against the default catalog.
func ValidPicks() scoring.Picks {
	return scoring.Picks{
		Winner:       "New England Patriots",
		OverUnder:    "Over 45.5",
		MVP:          "Drake Maye (NE, QB)",
		Receiving:    "Hunter Henry (NE)",
		Rushing:      "TreVeyon Henderson (NE)",
		BadBunny:     "Nein",
		PatriotsLove: "Defense wins championships",
	}
}

// ValidResults returns complete official results from the default catalog.
func ValidResults() scoring.Results {
	return scoring.Results{
		Winner:    "Seattle Seahawks",
		OverUnder: "Under 45.5",
		MVP:       "Sam Darnold (SEA, QB)",
		Receiving: "Cooper Kupp (SEA)",
		Rushing:   "Kenneth Walker III (SEA)",
		BadBunny:  "Nein",
	}
}

// SubmitRequestFor builds a submit body from a name and picks.
func SubmitRequestFor(name string, p scoring.Picks) models.SubmitRequest {
	return models.SubmitRequest{
		Name:         name,
		Winner:       p.Winner,
		OverUnder:    p.OverUnder,
		MVP:          p.MVP,
		Receiving:    p.Receiving,
		Rushing:      p.Rushing,
		BadBunny:     p.BadBunny,
		PatriotsLove: p.PatriotsLove,
	}
}

// ResultsRequestFor builds a results body.
func ResultsRequestFor(r scoring.Results) models.ResultsRequest {
	return models.ResultsRequest{
		Winner:    r.Winner,
		OverUnder: r.OverUnder,
		MVP:       r.MVP,
		Receiving: r.Receiving,
		Rushing:   r.Rushing,
		BadBunny:  r.BadBunny,
	}
}

// CreateTestSubmission inserts a submission and returns its ID
func CreateTestSubmission(t *testing.T, conn *sql.DB, name string, p scoring.Picks, createdAt time.Time) string {
	t.Helper()

	id, err := auth.NewSubmissionID()
	if err != nil {
		t.Fatalf("Failed to generate submission ID: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO submission (id, name, name_normalized, winner, over_under, mvp, receiving, rushing, bad_bunny, patriots_love, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, id, name, names.Normalize(name), p.Winner, p.OverUnder, p.MVP, p.Receiving, p.Rushing, p.BadBunny, p.PatriotsLove, createdAt.UTC())
	if err != nil {
		t.Fatalf("Failed to create test submission: %v", err)
	}

	return id
}

// SetTestResults stores the result set, optionally already locked
func SetTestResults(t *testing.T, conn *sql.DB, r scoring.Results, locked bool) {
	t.Helper()

	now := time.Now().UTC()
	var lockedAt *time.Time
	if locked {
		lockedAt = &now
	}

	_, err := conn.Exec(`
		INSERT INTO result_set (id, winner, over_under, mvp, receiving, rushing, bad_bunny, locked_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, models.ResultsID, nullIfEmpty(r.Winner), nullIfEmpty(r.OverUnder), nullIfEmpty(r.MVP),
		nullIfEmpty(r.Receiving), nullIfEmpty(r.Rushing), nullIfEmpty(r.BadBunny), lockedAt, now, now)
	if err != nil {
		t.Fatalf("Failed to create test results: %v", err)
	}
}

// CreateTestSession stores an admin session and returns its ID
func CreateTestSession(t *testing.T, conn *sql.DB, expiresAt time.Time) string {
	t.Helper()

	id, err := auth.NewSessionID()
	if err != nil {
		t.Fatalf("Failed to generate session ID: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO admin_session (id, expires_at, created_at)
		VALUES ($1, $2, $3)
	`, id, expiresAt.UTC(), time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	return id
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// WithCookie adds a cookie to the request and returns it
func WithCookie(req *http.Request, name, value string) *http.Request {
	req.AddCookie(&http.Cookie{Name: name, Value: value})
	return req
}

// ResponseCookie returns the named cookie set by the response, or nil
func ResponseCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
