// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/tippspiel/scoring"
	"github.com/danielhkuo/tippspiel/testutil"
)

// TestConcurrentSubmissions verifies that simultaneous submissions from
// different devices are all stored exactly once
func TestConcurrentSubmissions(t *testing.T) {
	env := newTestEnv(t)

	numGuests := 10
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numGuests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			body := testutil.SubmitRequestFor(fmt.Sprintf("Guest %c", 'A'+idx), testutil.ValidPicks())
			req := testutil.MakeRequest("POST", "/api/submit", body, map[string]string{
				"X-Forwarded-For": fmt.Sprintf("10.0.0.%d", idx+1),
			})
			w := httptest.NewRecorder()

			env.submit.Submit(w, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numGuests {
		t.Errorf("Expected %d successful submissions, got %d", numGuests, successCount.Load())
	}

	if got := testutil.CountRows(t, env.db, "submission"); got != numGuests {
		t.Errorf("Expected %d submissions in database, got %d", numGuests, got)
	}

	var unique int
	if err := env.db.QueryRow("SELECT COUNT(DISTINCT name_normalized) FROM submission").Scan(&unique); err != nil {
		t.Fatalf("Failed to count unique names: %v", err)
	}
	if unique != numGuests {
		t.Errorf("Expected %d unique names, got %d", numGuests, unique)
	}
}

// TestConcurrentOverviewReads verifies that overview snapshots stay
// consistent while submissions are coming in
func TestConcurrentOverviewReads(t *testing.T) {
	env := newTestEnv(t)
	testutil.SetTestResults(t, env.db, testutil.ValidResults(), false)

	numWriters := 5
	numReaders := 5
	var failures atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numWriters; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			body := testutil.SubmitRequestFor(fmt.Sprintf("Writer %d", idx), testutil.ValidPicks())
			req := testutil.MakeRequest("POST", "/api/submit", body, map[string]string{
				"X-Forwarded-For": fmt.Sprintf("10.1.0.%d", idx+1),
			})
			env.submit.Submit(httptest.NewRecorder(), req)
		}(i)
	}

	for i := 0; i < numReaders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			env.overview.GetOverview(w, testutil.MakeRequest("GET", "/api/overview", nil, nil))
			if w.Code != http.StatusOK {
				failures.Add(1)
				return
			}

			var ov scoring.Overview
			if err := decodeJSON(w, &ov); err != nil {
				failures.Add(1)
				return
			}
			// every snapshot is internally consistent
			if ov.Total != len(ov.Submissions) {
				failures.Add(1)
				return
			}
			for _, items := range ov.Distributions {
				sum := 0
				for _, item := range items {
					sum += item.Count
				}
				if sum != ov.Total {
					failures.Add(1)
					return
				}
			}
		}()
	}

	wg.Wait()

	if failures.Load() != 0 {
		t.Errorf("Expected consistent overviews, got %d failures", failures.Load())
	}
}
