// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/tippspiel/catalog"
)

func winnerPicks(values ...string) []Picks {
	picks := make([]Picks, len(values))
	for i, v := range values {
		picks[i] = Picks{Winner: v}
	}
	return picks
}

func TestAggregateKeepsCatalogOrder(t *testing.T) {
	items := Aggregate([]string{"A", "B"}, winnerPicks("A", "A", "B", "A"), catalog.Winner)

	assert.Equal(t, []DistributionItem{
		{Option: "A", Count: 3, Percent: 75.0},
		{Option: "B", Count: 1, Percent: 25.0},
	}, items)
}

func TestAggregateOrderIsNotFrequencyOrder(t *testing.T) {
	items := Aggregate([]string{"A", "B", "C"}, winnerPicks("C", "C", "B"), catalog.Winner)

	assert.Equal(t, "A", items[0].Option)
	assert.Equal(t, 0, items[0].Count)
	assert.Equal(t, "C", items[2].Option)
	assert.Equal(t, 2, items[2].Count)
}

func TestAggregateNoSubmissions(t *testing.T) {
	items := Aggregate([]string{"A", "B", "C"}, nil, catalog.Winner)

	assert.Equal(t, []DistributionItem{
		{Option: "A", Count: 0, Percent: 0},
		{Option: "B", Count: 0, Percent: 0},
		{Option: "C", Count: 0, Percent: 0},
	}, items)
}

func TestAggregateUnknownValuesCountTowardTotal(t *testing.T) {
	items := Aggregate([]string{"A", "B"}, winnerPicks("A", "zzz", "", "B"), catalog.Winner)

	assert.Equal(t, []DistributionItem{
		{Option: "A", Count: 1, Percent: 25.0},
		{Option: "B", Count: 1, Percent: 25.0},
	}, items)
}

func TestAggregateCountsEverySubmissionOnce(t *testing.T) {
	subs := winnerPicks("A", "B", "C", "A", "B", "A", "C", "C", "C")
	items := Aggregate([]string{"A", "B", "C"}, subs, catalog.Winner)

	sum := 0
	for _, item := range items {
		sum += item.Count
	}
	assert.Equal(t, len(subs), sum)
}

func TestAggregateRounding(t *testing.T) {
	// thirds do not add up to 100
	items := Aggregate([]string{"A", "B", "C"}, winnerPicks("A", "B", "C"), catalog.Winner)
	for _, item := range items {
		assert.Equal(t, 33.3, item.Percent)
	}

	items = Aggregate([]string{"A", "B"}, winnerPicks("A", "A", "B"), catalog.Winner)
	assert.Equal(t, 66.7, items[0].Percent)
	assert.Equal(t, 33.3, items[1].Percent)

	// 1/6 = 16.666...
	items = Aggregate([]string{"A", "B"}, winnerPicks("A", "B", "B", "B", "B", "B"), catalog.Winner)
	assert.Equal(t, 16.7, items[0].Percent)
	assert.Equal(t, 83.3, items[1].Percent)

	// 1/8 = 12.5 exactly
	items = Aggregate([]string{"A", "B"}, winnerPicks("A", "B", "B", "B", "B", "B", "B", "B"), catalog.Winner)
	assert.Equal(t, 12.5, items[0].Percent)
	assert.Equal(t, 87.5, items[1].Percent)
}

func TestPercent(t *testing.T) {
	tests := []struct {
		count, total int
		want         float64
	}{
		{0, 0, 0},
		{0, 5, 0},
		{5, 5, 100},
		{1, 3, 33.3},
		{2, 3, 66.7},
		{1, 7, 14.3},
		{1, 16, 6.3}, // 6.25 rounds half up
		{1, 1000, 0.1},
		{1, 2001, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, percent(tt.count, tt.total), "%d/%d", tt.count, tt.total)
	}
}

func TestAggregateReadsRequestedCategory(t *testing.T) {
	subs := []Picks{
		{Winner: "A", BadBunny: "Ja"},
		{Winner: "A", BadBunny: "Nein"},
	}

	items := Aggregate([]string{"Ja", "Nein"}, subs, catalog.BadBunny)

	assert.Equal(t, 1, items[0].Count)
	assert.Equal(t, 1, items[1].Count)
}

func TestDistributionsJSONFollowsCatalogOrder(t *testing.T) {
	d := Distributions{}
	// insert in reverse so map order cannot line up by accident
	for i := len(catalog.Categories) - 1; i >= 0; i-- {
		c := catalog.Categories[i]
		d[c] = []DistributionItem{{Option: "x", Count: 1, Percent: 100}}
	}
	d[catalog.Category("aaa")] = []DistributionItem{}

	out, err := json.Marshal(d)
	require.NoError(t, err)

	last := -1
	for _, c := range append(append([]catalog.Category{}, catalog.Categories...), "aaa") {
		idx := strings.Index(string(out), `"`+string(c)+`":`)
		require.GreaterOrEqual(t, idx, 0, "missing %s in %s", c, out)
		assert.Greater(t, idx, last, "%s out of order in %s", c, out)
		last = idx
	}

	var back Distributions
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, d, back)
}

func TestDistributionsJSONNilAndEmpty(t *testing.T) {
	out, err := json.Marshal(Distributions(nil))
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))

	out, err = json.Marshal(Distributions{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
}
