// Package ledgercsv parses reimbursement CSV exports. Benefits portals
// disagree on header naming and date formats, so the parser scans for a
// header landmark instead of assuming the first row, and tolerates
// footer and blank rows.
package ledgercsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/openclaims/remit/internal/encoding"
)

// Row is one reimbursement payment parsed from a CSV export.
type Row struct {
	Line         int
	Amount       int64
	ReimbursedAt time.Time
	Method       *string
	Notes        *string
}

// Header cells are matched case-insensitively against these aliases.
var headerAliases = map[string]string{
	"date":           "date",
	"reimbursed at":  "date",
	"payment date":   "date",
	"amount":         "amount",
	"reimbursement":  "amount",
	"method":         "method",
	"payment method": "method",
	"notes":          "notes",
	"memo":           "notes",
}

var dateLayouts = []string{
	time.DateOnly,
	"01/02/2006",
	"02-01-2006",
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]Row, error) {
	utf8r, err := enc.UTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx, ok := findHeader(records)
	if !ok {
		return nil, fmt.Errorf("no header row found: need at least date and amount columns")
	}

	return parseRows(cols, records[headerIdx+1:], headerIdx+1)
}

// colIndex maps canonical column names to their index in the row.
type colIndex map[string]int

// findHeader scans rows for one that carries both a date and an amount
// column under any known alias.
func findHeader(records [][]string) (colIndex, int, bool) {
	for rowIdx, row := range records {
		cols := make(colIndex)

		for i, cell := range row {
			name, ok := headerAliases[strings.ToLower(strings.TrimSpace(cell))]
			if !ok {
				continue
			}

			if _, taken := cols[name]; !taken {
				cols[name] = i
			}
		}

		if _, ok := cols["date"]; !ok {
			continue
		}

		if _, ok := cols["amount"]; !ok {
			continue
		}

		return cols, rowIdx, true
	}

	return nil, 0, false
}

// parseRows parses the data records following the header. firstIdx is the
// 0-based index of the first data record in the full record list.
func parseRows(cols colIndex, records [][]string, firstIdx int) ([]Row, error) {
	var rows []Row

	for i, record := range records {
		line := firstIdx + i + 1 // 1-based record number, preamble included

		date, ok := parseDate(cellValue(record, cols["date"]))
		if !ok {
			// Footer or blank row.
			continue
		}

		amountCell := cellValue(record, cols["amount"])
		if amountCell == "" {
			continue
		}

		cents, err := parseAmount(amountCell)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad amount %q: %w", line, amountCell, err)
		}

		row := Row{Line: line, Amount: cents, ReimbursedAt: date}

		if idx, ok := cols["method"]; ok {
			if v := cellValue(record, idx); v != "" {
				row.Method = &v
			}
		}

		if idx, ok := cols["notes"]; ok {
			if v := cellValue(record, idx); v != "" {
				row.Notes = &v
			}
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
