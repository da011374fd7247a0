// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"time"

	"github.com/danielhkuo/tippspiel/catalog"
	"github.com/danielhkuo/tippspiel/scoring"
)

// ResultsID is the fixed primary key of the single result set row.
const ResultsID = "global-results"

// Cookie names
const (
	SubmissionCookie = "sb_party_submission_id"
	AdminCookie      = "sb_party_admin_session"
)

// Request types

// The option tag checks the value against the catalog for that category.
type SubmitRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=40"`
	Winner       string `json:"winner" validate:"required,option=winner"`
	OverUnder    string `json:"overUnder" validate:"required,option=overUnder"`
	MVP          string `json:"mvp" validate:"required,option=mvp"`
	Receiving    string `json:"receiving" validate:"required,option=receiving"`
	Rushing      string `json:"rushing" validate:"required,option=rushing"`
	BadBunny     string `json:"badBunny" validate:"required,option=badBunny"`
	PatriotsLove string `json:"patriotsLove" validate:"required,option=patriotsLove"`
}

func (r SubmitRequest) Picks() scoring.Picks {
	return scoring.Picks{
		Winner:       r.Winner,
		OverUnder:    r.OverUnder,
		MVP:          r.MVP,
		Receiving:    r.Receiving,
		Rushing:      r.Rushing,
		BadBunny:     r.BadBunny,
		PatriotsLove: r.PatriotsLove,
	}
}

type ResultsRequest struct {
	Winner    string `json:"winner" validate:"required,option=winner"`
	OverUnder string `json:"overUnder" validate:"required,option=overUnder"`
	MVP       string `json:"mvp" validate:"required,option=mvp"`
	Receiving string `json:"receiving" validate:"required,option=receiving"`
	Rushing   string `json:"rushing" validate:"required,option=rushing"`
	BadBunny  string `json:"badBunny" validate:"required,option=badBunny"`
}

func (r ResultsRequest) Results() scoring.Results {
	return scoring.Results{
		Winner:    r.Winner,
		OverUnder: r.OverUnder,
		MVP:       r.MVP,
		Receiving: r.Receiving,
		Rushing:   r.Rushing,
		BadBunny:  r.BadBunny,
	}
}

type LoginRequest struct {
	Password string `json:"password"`
}

// Response types

type SubmitResponse struct {
	OK           bool   `json:"ok"`
	SubmissionID string `json:"submission_id"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type MeResponse struct {
	Submission *scoring.Submission `json:"submission"`
}

// ResultRecord is the stored result set as the admin sees it, including
// timestamps and partially entered answers.
type ResultRecord struct {
	scoring.Results
	LockedAt  *time.Time `json:"lockedAt"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type ResultsResponse struct {
	Results *ResultRecord `json:"results"`
}

type LockResponse struct {
	OK       bool       `json:"ok"`
	LockedAt *time.Time `json:"lockedAt"`
}

// AdminSubmission exposes the normalized name hidden from public views.
type AdminSubmission struct {
	scoring.Submission
	NameNormalized string `json:"nameNormalized"`
}

type SubmissionsResponse struct {
	Submissions []AdminSubmission `json:"submissions"`
}

type DeleteResponse struct {
	OK      bool  `json:"ok"`
	Deleted int64 `json:"deleted"`
}

type CategoryInfo struct {
	Key     catalog.Category `json:"key"`
	Label   string           `json:"label"`
	Scored  bool             `json:"scored"`
	Options []string         `json:"options"`
}

type CatalogResponse struct {
	Event      catalog.Event  `json:"event"`
	Categories []CategoryInfo `json:"categories"`
}

// Domain types

type AdminSession struct {
	ID        string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Error response

type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}
