// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/tippspiel/catalog"
	"github.com/danielhkuo/tippspiel/scoring"
)

// columnWidths in header order.
var columnWidths = []float64{24, 22, 24, 16, 28, 28, 26, 22, 36, 10}

// WriteXLSX writes a single-sheet workbook with a bold header row, fixed
// column widths and an autofilter over the header. Scores are numeric cells.
func WriteXLSX(w io.Writer, cat *catalog.Catalog, ov scoring.Overview) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := SheetName(cat.Event.Title)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := Header(cat)
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err := f.AutoFilter(sheet, "A1:"+lastCol+"1", nil); err != nil {
		return fmt.Errorf("failed to add autofilter: %w", err)
	}

	for i, s := range ov.Submissions {
		row := make([]interface{}, 0, len(header))
		row = append(row, formatTime(s.CreatedAt), s.Name)
		for _, c := range catalog.Categories {
			row = append(row, s.Picks.Get(c))
		}
		if s.Score != nil {
			row = append(row, *s.Score)
		} else {
			row = append(row, nil)
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// SheetName turns a title into a valid worksheet name: no []:*?/\
// characters and at most 31 runes.
func SheetName(title string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '-'
		}
		return r
	}, strings.TrimSpace(title))

	if runes := []rune(name); len(runes) > 31 {
		name = string(runes[:31])
	}
	if name == "" {
		return "Tippspiel"
	}
	return name
}
