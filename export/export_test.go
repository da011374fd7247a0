// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/tippspiel/catalog"
	"github.com/danielhkuo/tippspiel/scoring"
)

var official = scoring.Results{
	Winner:    "Seattle Seahawks",
	OverUnder: "Under 45.5",
	MVP:       "Sam Darnold (SEA, QB)",
	Receiving: "Cooper Kupp (SEA)",
	Rushing:   "Kenneth Walker III (SEA)",
	BadBunny:  "Nein",
}

func testSubmissions() []scoring.Submission {
	return []scoring.Submission{
		{
			ID:   "1",
			Name: `Tobi "The Boss"`,
			Picks: scoring.Picks{
				Winner:       "Seattle Seahawks",
				OverUnder:    "Under 45.5",
				MVP:          "Sam Darnold (SEA, QB)",
				Receiving:    "Hunter Henry (NE)",
				Rushing:      "Drake Maye (NE)",
				BadBunny:     "Nein",
				PatriotsLove: "Defense wins championships",
			},
			CreatedAt: time.Date(2026, 2, 8, 17, 30, 0, 123000000, time.UTC),
		},
		{
			ID:   "2",
			Name: "Anna",
			Picks: scoring.Picks{
				Winner:       "New England Patriots",
				OverUnder:    "Over 45.5",
				MVP:          "Drake Maye (NE, QB)",
				Receiving:    "Cooper Kupp (SEA)",
				Rushing:      "Kenneth Walker III (SEA)",
				BadBunny:     "Ja",
				PatriotsLove: "Patriot Pride – Gefühlssache",
			},
			CreatedAt: time.Date(2026, 2, 8, 18, 0, 0, 0, time.FixedZone("CET", 3600)),
		},
	}
}

func TestHeader(t *testing.T) {
	assert.Equal(t, []string{
		"Timestamp",
		"Name",
		"Sieger",
		"Over/Under",
		"MVP",
		"Most Receiving Yards",
		"Most Rushing Yards",
		"Bad Bunny beleidigt?",
		"Warum ich die Patriots liebe",
		"Punkte",
	}, Header(catalog.Default()))
}

func TestRows(t *testing.T) {
	cat := catalog.Default()

	unscored := Rows(scoring.BuildOverview(cat, testSubmissions(), nil))
	require.Len(t, unscored, 2)
	assert.Equal(t, "2026-02-08T17:30:00.123Z", unscored[0][0])
	assert.Equal(t, "2026-02-08T17:00:00.000Z", unscored[1][0])
	assert.Equal(t, "Patriot Pride – Gefühlssache", unscored[1][8])
	assert.Equal(t, "", unscored[0][9])

	scored := Rows(scoring.BuildOverview(cat, testSubmissions(), &scoring.ResultSet{Results: official}))
	assert.Equal(t, "4", scored[0][9])
	assert.Equal(t, "2", scored[1][9])
}

func TestWriteCSV(t *testing.T) {
	cat := catalog.Default()
	ov := scoring.BuildOverview(cat, testSubmissions(), &scoring.ResultSet{Results: official})

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, cat, ov))

	assert.Contains(t, buf.String(), `"Tobi ""The Boss"""`)

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, Header(cat), records[0])
	assert.Equal(t, `Tobi "The Boss"`, records[1][1])
	assert.Equal(t, "4", records[1][9])
}

func TestWriteCSVEmpty(t *testing.T) {
	cat := catalog.Default()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, cat, scoring.BuildOverview(cat, nil, nil)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestWriteXLSX(t *testing.T) {
	cat := catalog.Default()
	ov := scoring.BuildOverview(cat, testSubmissions(), &scoring.ResultSet{Results: official})

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, cat, ov))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	sheet := "Tobis Superbowl Tippspiel"
	assert.Equal(t, []string{sheet}, f.GetSheetList())

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Header(cat), rows[0])
	assert.Equal(t, `Tobi "The Boss"`, rows[1][1])

	score, err := f.GetCellValue(sheet, "J2")
	require.NoError(t, err)
	assert.Equal(t, "4", score)

	width, err := f.GetColWidth(sheet, "I")
	require.NoError(t, err)
	assert.Equal(t, 36.0, width)
}

func TestWriteXLSXUnscored(t *testing.T) {
	cat := catalog.Default()

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, cat, scoring.BuildOverview(cat, testSubmissions(), nil)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	score, err := f.GetCellValue("Tobis Superbowl Tippspiel", "J2")
	require.NoError(t, err)
	assert.Equal(t, "", score)
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Tobis Superbowl Tippspiel", SheetName("Tobis Superbowl Tippspiel"))
	assert.Equal(t, "Super Bowl LX- Party", SheetName("Super Bowl LX: Party"))
	assert.Equal(t, "Tippspiel", SheetName("   "))
	assert.Len(t, []rune(SheetName(strings.Repeat("ü", 40))), 31)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "tobis-superbowl-tippspiel.csv", Filename(catalog.Default(), "csv"))
}
