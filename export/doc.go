// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package export renders the overview as a spreadsheet download.

Both formats share the same columns:

	Timestamp, Name, <export label per category>, Punkte

Rows follow the order of the overview passed in; the admin handlers build it
from submissions sorted oldest first. Timestamps are ISO 8601 in UTC.
Punkte stays empty until complete results exist.

	export.WriteCSV(w, cat, ov)
	export.WriteXLSX(w, cat, ov)

The workbook has one sheet named after the event title, a bold header row,
fixed column widths and an autofilter on the header.
*/
package export
