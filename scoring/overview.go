// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"time"

	"github.com/danielhkuo/tippspiel/catalog"
)

// Submission is one participant's locked entry.
type Submission struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	NameNormalized string `json:"-"`
	Picks
	CreatedAt time.Time `json:"createdAt"`
}

// ResultSet is the stored official answers. Any field may still be empty
// while the administrator is entering results.
type ResultSet struct {
	Results
	LockedAt *time.Time `json:"lockedAt"`
}

// Locked reports whether the result set can no longer be changed.
func (rs *ResultSet) Locked() bool {
	return rs != nil && rs.LockedAt != nil
}

// ScoredSubmission is a submission as shown on the overview. Score and
// Breakdown are nil until results are available; zero is a real score.
type ScoredSubmission struct {
	Submission
	Score     *int       `json:"score,omitempty"`
	Breakdown *Breakdown `json:"breakdown,omitempty"`
}

// Overview is the read model consumed by the live page and the exports.
type Overview struct {
	Total         int                `json:"total"`
	TopScore      *int               `json:"topScore"`
	Results       *ResultSet         `json:"results"`
	Submissions   []ScoredSubmission `json:"submissions"`
	Distributions Distributions      `json:"distributions"`
}

// Scored reports whether the overview carries scores.
func (o Overview) Scored() bool {
	return o.Results != nil
}

// IsLeader reports whether s holds the top score. Ties produce several
// leaders. Nothing leads while the overview is unscored.
func (o Overview) IsLeader(s ScoredSubmission) bool {
	if o.TopScore == nil || s.Score == nil {
		return false
	}
	return *s.Score == *o.TopScore
}

// Leaders returns every submission tied on the top score, in overview order.
func (o Overview) Leaders() []ScoredSubmission {
	var leaders []ScoredSubmission
	for _, s := range o.Submissions {
		if o.IsLeader(s) {
			leaders = append(leaders, s)
		}
	}
	return leaders
}

// BuildOverview scores every submission against results, when they are
// complete, and aggregates the picks of every category. Submissions keep the
// order they were passed in.
func BuildOverview(cat *catalog.Catalog, submissions []Submission, results *ResultSet) Overview {
	usable := usableResults(results)

	ov := Overview{
		Total:         len(submissions),
		Results:       usable,
		Submissions:   make([]ScoredSubmission, 0, len(submissions)),
		Distributions: make(Distributions, len(catalog.Categories)),
	}

	picks := make([]Picks, 0, len(submissions))
	for _, sub := range submissions {
		picks = append(picks, sub.Picks)

		scored := ScoredSubmission{Submission: sub}
		if usable != nil {
			b := Score(sub.Picks, usable.Results)
			total := b.Total
			scored.Score = &total
			scored.Breakdown = &b

			if ov.TopScore == nil || total > *ov.TopScore {
				top := total
				ov.TopScore = &top
			}
		}
		ov.Submissions = append(ov.Submissions, scored)
	}

	for _, c := range catalog.Categories {
		ov.Distributions[c] = Aggregate(cat.Options(c), picks, c)
	}

	return ov
}

// usableResults returns a copy of results if every scoring category is set,
// otherwise nil.
func usableResults(results *ResultSet) *ResultSet {
	if results == nil || !results.Complete() {
		return nil
	}

	out := &ResultSet{Results: results.Results}
	if results.LockedAt != nil {
		lockedAt := *results.LockedAt
		out.LockedAt = &lockedAt
	}
	return out
}
