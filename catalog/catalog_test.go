// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, "Tobis Superbowl Tippspiel", c.Event.Title)
	assert.Equal(t, 45.5, c.Event.OverUnder)
	assert.Len(t, c.Event.Teams, 2)
	assert.Equal(t, "tobis-superbowl-tippspiel", c.ExportName)

	for _, cat := range Categories {
		assert.NotEmpty(t, c.Options(cat), "category %s has no options", cat)
	}

	assert.Equal(t, []string{"New England Patriots", "Seattle Seahawks"}, c.Options(Winner))
	assert.Equal(t, []string{"Ja", "Nein", "Unklar / nicht passiert"}, c.Options(BadBunny))
	assert.Len(t, c.Options(MVP), 10)
	assert.Equal(t, "Sieger", c.ExportLabel(Winner))
	assert.Equal(t, "Super Bowl Sieger", c.Label(Winner))
}

func TestOptionsReturnsCopy(t *testing.T) {
	c := Default()

	opts := c.Options(Winner)
	opts[0] = "mutated"

	assert.Equal(t, "New England Patriots", c.Options(Winner)[0])
}

func TestContains(t *testing.T) {
	c := Default()

	assert.True(t, c.Contains(OverUnder, "Over 45.5"))
	assert.False(t, c.Contains(OverUnder, "over 45.5"))
	assert.False(t, c.Contains(OverUnder, "Ja"))
	assert.False(t, c.Contains(Category("bogus"), "Ja"))
}

func TestCategoryScored(t *testing.T) {
	for _, cat := range ScoringCategories {
		assert.True(t, cat.Scored(), "%s should be scored", cat)
	}
	assert.False(t, PatriotsLove.Scored())
	assert.False(t, Category("bogus").Scored())
	assert.Len(t, ScoringCategories, 6)
	assert.Len(t, Categories, 7)
}

const minimalCatalog = `
title = "Test"
[categories.winner]
options = ["A", "B"]
[categories.overUnder]
options = ["Over", "Under"]
[categories.mvp]
options = ["X"]
[categories.receiving]
options = ["Y"]
[categories.rushing]
options = ["Z"]
[categories.badBunny]
options = ["Ja", "Nein"]
[categories.patriotsLove]
options = ["Fan"]
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(minimalCatalog))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, c.Options(Winner))
	assert.Equal(t, "tippspiel", c.ExportName)
	// labels fall back to the category key
	assert.Equal(t, "winner", c.Label(Winner))
	assert.Equal(t, "winner", c.ExportLabel(Winner))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{
			name: "missing category",
			data: `[categories.winner]
options = ["A"]`,
			want: ErrMissingCategory,
		},
		{
			name: "empty category",
			data: minimalCatalog + "\n[categories.extra]\noptions = []\n",
			want: ErrUnknownCategory,
		},
		{
			name: "duplicate option",
			data: `
[categories.winner]
options = ["A", "A"]
[categories.overUnder]
options = ["Over"]
[categories.mvp]
options = ["X"]
[categories.receiving]
options = ["Y"]
[categories.rushing]
options = ["Z"]
[categories.badBunny]
options = ["Ja"]
[categories.patriotsLove]
options = ["Fan"]
`,
			want: ErrDuplicateOption,
		},
		{
			name: "no options",
			data: `
[categories.winner]
options = []
[categories.overUnder]
options = ["Over"]
[categories.mvp]
options = ["X"]
[categories.receiving]
options = ["Y"]
[categories.rushing]
options = ["Z"]
[categories.badBunny]
options = ["Ja"]
[categories.patriotsLove]
options = ["Fan"]
`,
			want: ErrEmptyCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseInvalidTOML(t *testing.T) {
	_, err := Parse([]byte("title = "))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(minimalCatalog), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Test", c.Event.Title)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
