// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import "github.com/danielhkuo/tippspiel/catalog"

// Picks are one participant's answers, one value per category.
type Picks struct {
	Winner       string `json:"winner"`
	OverUnder    string `json:"overUnder"`
	MVP          string `json:"mvp"`
	Receiving    string `json:"receiving"`
	Rushing      string `json:"rushing"`
	BadBunny     string `json:"badBunny"`
	PatriotsLove string `json:"patriotsLove"`
}

// Get returns the pick for cat, or "" for an unknown category.
func (p Picks) Get(cat catalog.Category) string {
	switch cat {
	case catalog.Winner:
		return p.Winner
	case catalog.OverUnder:
		return p.OverUnder
	case catalog.MVP:
		return p.MVP
	case catalog.Receiving:
		return p.Receiving
	case catalog.Rushing:
		return p.Rushing
	case catalog.BadBunny:
		return p.BadBunny
	case catalog.PatriotsLove:
		return p.PatriotsLove
	}
	return ""
}

// Results are the official answers for the six scoring categories.
type Results struct {
	Winner    string `json:"winner"`
	OverUnder string `json:"overUnder"`
	MVP       string `json:"mvp"`
	Receiving string `json:"receiving"`
	Rushing   string `json:"rushing"`
	BadBunny  string `json:"badBunny"`
}

// Get returns the official answer for cat, or "" if cat is not scored.
func (r Results) Get(cat catalog.Category) string {
	switch cat {
	case catalog.Winner:
		return r.Winner
	case catalog.OverUnder:
		return r.OverUnder
	case catalog.MVP:
		return r.MVP
	case catalog.Receiving:
		return r.Receiving
	case catalog.Rushing:
		return r.Rushing
	case catalog.BadBunny:
		return r.BadBunny
	}
	return ""
}

// Complete reports whether every scoring category has an answer.
// Only complete results may be scored.
func (r Results) Complete() bool {
	for _, cat := range catalog.ScoringCategories {
		if r.Get(cat) == "" {
			return false
		}
	}
	return true
}

// Breakdown is the per-category outcome of Score.
type Breakdown struct {
	Winner    bool `json:"winner"`
	OverUnder bool `json:"overUnder"`
	MVP       bool `json:"mvp"`
	Receiving bool `json:"receiving"`
	Rushing   bool `json:"rushing"`
	BadBunny  bool `json:"badBunny"`
	Total     int  `json:"total"`
}

// Hit reports whether the pick for cat matched the result.
func (b Breakdown) Hit(cat catalog.Category) bool {
	switch cat {
	case catalog.Winner:
		return b.Winner
	case catalog.OverUnder:
		return b.OverUnder
	case catalog.MVP:
		return b.MVP
	case catalog.Receiving:
		return b.Receiving
	case catalog.Rushing:
		return b.Rushing
	case catalog.BadBunny:
		return b.BadBunny
	}
	return false
}

// Score compares picks with complete results. Total is the number of exact
// matches across the six scoring categories.
func Score(p Picks, r Results) Breakdown {
	b := Breakdown{
		Winner:    p.Winner == r.Winner,
		OverUnder: p.OverUnder == r.OverUnder,
		MVP:       p.MVP == r.MVP,
		Receiving: p.Receiving == r.Receiving,
		Rushing:   p.Rushing == r.Rushing,
		BadBunny:  p.BadBunny == r.BadBunny,
	}

	for _, cat := range catalog.ScoringCategories {
		if b.Hit(cat) {
			b.Total++
		}
	}

	return b
}
