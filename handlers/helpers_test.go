// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/tippspiel/catalog"
	"github.com/danielhkuo/tippspiel/cliparse"
	"github.com/danielhkuo/tippspiel/metrics"
	"github.com/danielhkuo/tippspiel/models"
	"github.com/danielhkuo/tippspiel/ratelimit"
	"github.com/danielhkuo/tippspiel/testutil"
)

// stubLimiter always answers the same
type stubLimiter struct {
	allow bool
	err   error
}

func (s stubLimiter) Allow(context.Context, string) (bool, error) {
	return s.allow, s.err
}

type testEnv struct {
	db       *sql.DB
	cfg      cliparse.Config
	metrics  *metrics.Metrics
	submit   *SubmissionHandler
	overview *OverviewHandler
	admin    *AdminHandler
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWithLimiter(t, ratelimit.NewMemoryLimiter(100, time.Minute))
}

func newTestEnvWithLimiter(t *testing.T, limiter ratelimit.Limiter) *testEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	cat := catalog.Default()
	m := metrics.NewMetrics()

	return &testEnv{
		db:       db,
		cfg:      cfg,
		metrics:  m,
		submit:   NewSubmissionHandler(db, cfg, cat, limiter, m),
		overview: NewOverviewHandler(db, cat),
		admin:    NewAdminHandler(db, cfg, cat, m),
	}
}

// adminRequest attaches a fresh valid admin session cookie
func (e *testEnv) adminRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	sessionID := testutil.CreateTestSession(t, e.db, time.Now().Add(time.Hour))
	return testutil.WithCookie(testutil.MakeRequest(method, path, body, nil), models.AdminCookie, sessionID)
}

// serveAdmin runs an admin handler behind the session check
func (e *testEnv) serveAdmin(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.admin.RequireSession(h)(w, req)
	return w
}

func serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func jsonBody(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

func decodeJSON(w *httptest.ResponseRecorder, v interface{}) error {
	return json.NewDecoder(w.Body).Decode(v)
}
