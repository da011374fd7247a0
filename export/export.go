// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/danielhkuo/tippspiel/catalog"
	"github.com/danielhkuo/tippspiel/scoring"
)

// Content types and file extensions for the download responses.
const (
	CSVContentType  = "text/csv; charset=utf-8"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// timestampLayout matches ISO 8601 in UTC with milliseconds.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Header returns the column titles: timestamp, name, one column per
// category in catalog order, then the score.
func Header(cat *catalog.Catalog) []string {
	header := make([]string, 0, len(catalog.Categories)+3)
	header = append(header, "Timestamp", "Name")
	for _, c := range catalog.Categories {
		header = append(header, cat.ExportLabel(c))
	}
	return append(header, "Punkte")
}

// Rows renders one row per submission in overview order. The score column
// is empty while the overview is unscored.
func Rows(ov scoring.Overview) [][]string {
	rows := make([][]string, 0, len(ov.Submissions))
	for _, s := range ov.Submissions {
		row := make([]string, 0, len(catalog.Categories)+3)
		row = append(row, formatTime(s.CreatedAt), s.Name)
		for _, c := range catalog.Categories {
			row = append(row, s.Picks.Get(c))
		}

		score := ""
		if s.Score != nil {
			score = strconv.Itoa(*s.Score)
		}
		rows = append(rows, append(row, score))
	}
	return rows
}

// WriteCSV writes the header and all rows as CSV.
func WriteCSV(w io.Writer, cat *catalog.Catalog, ov scoring.Overview) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header(cat)); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := cw.WriteAll(Rows(ov)); err != nil {
		return fmt.Errorf("failed to write CSV rows: %w", err)
	}
	return nil
}

// Filename returns the download name for the given extension.
func Filename(cat *catalog.Catalog, ext string) string {
	return cat.ExportName + "." + ext
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
