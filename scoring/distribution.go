// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/danielhkuo/tippspiel/catalog"
)

// DistributionItem is how many submissions picked one option.
type DistributionItem struct {
	Option  string  `json:"option"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Distributions holds the items of each category. It encodes as a JSON
// object whose keys follow catalog.Categories; keys outside the catalog come
// last in sorted order.
type Distributions map[catalog.Category][]DistributionItem

func (d Distributions) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}

	keys := make([]catalog.Category, 0, len(d))
	for _, c := range catalog.Categories {
		if _, ok := d[c]; ok {
			keys = append(keys, c)
		}
	}
	var extra []catalog.Category
	for c := range d {
		if !c.Valid() {
			extra = append(extra, c)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	keys = append(keys, extra...)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(c))
		if err != nil {
			return nil, err
		}
		items, err := json.Marshal(d[c])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(items)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

var hundred = decimal.NewFromInt(100)

// Aggregate counts the picks for cat over all submissions. The result has
// one item per declared option, in the given order. Values that match no
// option are not counted for any item but still count toward the total the
// percentages are based on.
func Aggregate(options []string, submissions []Picks, cat catalog.Category) []DistributionItem {
	counts := make(map[string]int, len(options))
	for _, opt := range options {
		counts[opt] = 0
	}

	for _, sub := range submissions {
		value := sub.Get(cat)
		if _, ok := counts[value]; ok {
			counts[value]++
		}
	}

	total := len(submissions)
	items := make([]DistributionItem, 0, len(options))
	for _, opt := range options {
		count := counts[opt]
		items = append(items, DistributionItem{
			Option:  opt,
			Count:   count,
			Percent: percent(count, total),
		})
	}

	return items
}

// percent returns count/total as a percentage rounded half-up to one decimal.
func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}

	p := decimal.NewFromInt(int64(count)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(total))).
		Round(1)

	return p.InexactFloat64()
}
