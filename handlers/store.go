// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/tippspiel/models"
	"github.com/danielhkuo/tippspiel/scoring"
)

const submissionColumns = `id, name, name_normalized, winner, over_under, mvp, receiving, rushing, bad_bunny, patriots_love, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row scanner) (scoring.Submission, error) {
	var s scoring.Submission
	err := row.Scan(
		&s.ID, &s.Name, &s.NameNormalized,
		&s.Winner, &s.OverUnder, &s.MVP, &s.Receiving, &s.Rushing, &s.BadBunny, &s.PatriotsLove,
		&s.CreatedAt,
	)
	return s, err
}

// querySubmissions runs a SELECT of submissionColumns and collects the rows.
func querySubmissions(ctx context.Context, db *sql.DB, query string, args ...any) ([]scoring.Submission, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	submissions := []scoring.Submission{}
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read submissions: %w", err)
	}

	return submissions, nil
}

// loadSubmissionsOldestFirst returns every submission in the order the
// overview and the exports show them.
func loadSubmissionsOldestFirst(ctx context.Context, db *sql.DB) ([]scoring.Submission, error) {
	return querySubmissions(ctx, db, `SELECT `+submissionColumns+` FROM submission ORDER BY created_at ASC, id ASC`)
}

// loadSubmission returns nil when no submission has the ID.
func loadSubmission(ctx context.Context, db *sql.DB, id string) (*scoring.Submission, error) {
	row := db.QueryRowContext(ctx, `SELECT `+submissionColumns+` FROM submission WHERE id = $1`, id)
	s, err := scanSubmission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load submission: %w", err)
	}
	return &s, nil
}

// loadResultRecord returns nil when no results were saved yet.
func loadResultRecord(ctx context.Context, db *sql.DB) (*models.ResultRecord, error) {
	var (
		winner, overUnder, mvp, receiving, rushing, badBunny sql.NullString
		lockedAt                                             sql.NullTime
		rec                                                  models.ResultRecord
	)

	err := db.QueryRowContext(ctx, `
		SELECT winner, over_under, mvp, receiving, rushing, bad_bunny, locked_at, created_at, updated_at
		FROM result_set
		WHERE id = $1
	`, models.ResultsID).Scan(&winner, &overUnder, &mvp, &receiving, &rushing, &badBunny, &lockedAt, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load results: %w", err)
	}

	rec.Results = scoring.Results{
		Winner:    winner.String,
		OverUnder: overUnder.String,
		MVP:       mvp.String,
		Receiving: receiving.String,
		Rushing:   rushing.String,
		BadBunny:  badBunny.String,
	}
	if lockedAt.Valid {
		t := lockedAt.Time
		rec.LockedAt = &t
	}

	return &rec, nil
}

// resultSet strips the bookkeeping timestamps off a stored record.
func resultSet(rec *models.ResultRecord) *scoring.ResultSet {
	if rec == nil {
		return nil
	}
	return &scoring.ResultSet{Results: rec.Results, LockedAt: rec.LockedAt}
}

// likePattern matches s anywhere, with LIKE wildcards in s taken literally.
// Use with ESCAPE '\'.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
