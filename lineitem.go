package md2quote

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/alnah/go-md2quote/internal/decfmt"
)

// LineItem is one row of the billable-work table.
// Total is optional on input: when nil, it is computed from Quantity*Rate.
// A non-nil Total is a manual override and is trusted as-is.
type LineItem struct {
	Description string
	Quantity    decimal.Decimal
	Unit        string
	Rate        decimal.Decimal
	Total       *decimal.Decimal
}

// RowTotal returns the effective total of the row: the explicit Total when
// present, otherwise Quantity*Rate rounded half-to-even to cents.
func (it LineItem) RowTotal() decimal.Decimal {
	if it.Total != nil {
		return *it.Total
	}
	return it.Quantity.Mul(it.Rate).RoundBank(2)
}

// RowError reports an unparseable numeric cell in a line-item row.
// Row errors are collected on the document instead of aborting the parse:
// one bad row must not block previewing the rest of the document.
type RowError struct {
	Row    int    // 1-based over the table's data rows
	Column string // canonical column name
	Value  string // offending cell content
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line item row %d, column %s: %v: %q", e.Row, e.Column, ErrNumericParse, e.Value)
}

func (e *RowError) Unwrap() error { return ErrNumericParse }

// column identifies a canonical line-item table column.
type column int

const (
	colDescription column = iota
	colQty
	colUnit
	colRate
	colTotal
	columnCount
)

// columnNames are the canonical headers, in canonical order.
var columnNames = [columnCount]string{"Description", "Qty", "Unit", "Rate", "Total"}

// headerAliases maps lowercased header cells to canonical columns.
// English and German headers are equivalent.
var headerAliases = map[string]column{
	"description":  colDescription,
	"beschreibung": colDescription,
	"leistung":     colDescription,

	"qty":      colQty,
	"quantity": colQty,
	"menge":    colQty,

	"unit":    colUnit,
	"einh.":   colUnit,
	"einheit": colUnit,

	"rate":  colRate,
	"satz":  colRate,
	"preis": colRate,

	"total":  colTotal,
	"gesamt": colTotal,
	"summe":  colTotal,
}

// delimiterCell matches one cell of a pipe-table delimiter row.
var delimiterCell = regexp.MustCompile(`^:?-+:?$`)

// splitPipeRow splits a markdown table row into trimmed cells.
// Returns nil if the line is not a pipe row.
func splitPipeRow(line string) []string {
	trimmed := strings.TrimSpace(line)
	if !strings.Contains(trimmed, "|") {
		return nil
	}
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")

	cells := strings.Split(trimmed, "|")
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

// parseHeaderRow maps cell positions to canonical columns.
// Returns ok only if the row covers all five canonical columns exactly once;
// column order in the source is irrelevant.
func parseHeaderRow(line string) (map[int]column, bool) {
	cells := splitPipeRow(line)
	if len(cells) != int(columnCount) {
		return nil, false
	}

	mapping := make(map[int]column, columnCount)
	seen := make(map[column]bool, columnCount)
	for i, cell := range cells {
		col, ok := headerAliases[strings.ToLower(cell)]
		if !ok || seen[col] {
			return nil, false
		}
		mapping[i] = col
		seen[col] = true
	}
	return mapping, true
}

// isDelimiterRow reports whether line is a pipe-table delimiter row
// (cells of dashes with optional alignment colons).
func isDelimiterRow(line string) bool {
	cells := splitPipeRow(line)
	if len(cells) == 0 {
		return false
	}
	for _, c := range cells {
		if !delimiterCell.MatchString(c) {
			return false
		}
	}
	return true
}

// isLineItemTable reports whether a body block is the line-item table:
// a recognized header row followed by a delimiter row.
func isLineItemTable(lines []string) bool {
	if len(lines) < 2 {
		return false
	}
	_, ok := parseHeaderRow(lines[0])
	return ok && isDelimiterRow(lines[1])
}

// parseLineItemTable extracts line items from a table block.
// Numeric cells parse via decfmt (dot and comma decimal separators both
// accepted). An unparseable Qty or Rate yields a RowError and the row is
// kept with the field unset; same for Total, which stays nil.
func parseLineItemTable(lines []string) ([]LineItem, []*RowError) {
	mapping, _ := parseHeaderRow(lines[0])

	var items []LineItem
	var rowErrs []*RowError

	row := 0
	for _, line := range lines[2:] {
		cells := splitPipeRow(line)
		if cells == nil {
			continue
		}
		row++

		var item LineItem
		for pos, col := range mapping {
			var cell string
			if pos < len(cells) {
				cell = cells[pos]
			}

			switch col {
			case colDescription:
				item.Description = cell
			case colUnit:
				item.Unit = cell
			case colQty:
				if d, err := decfmt.ParseAmount(cell); err != nil {
					rowErrs = append(rowErrs, &RowError{Row: row, Column: columnNames[colQty], Value: cell})
				} else {
					item.Quantity = d
				}
			case colRate:
				if d, err := decfmt.ParseAmount(cell); err != nil {
					rowErrs = append(rowErrs, &RowError{Row: row, Column: columnNames[colRate], Value: cell})
				} else {
					item.Rate = d
				}
			case colTotal:
				if cell == "" || cell == "-" {
					break // optional, computed later
				}
				if d, err := decfmt.ParseAmount(cell); err != nil {
					rowErrs = append(rowErrs, &RowError{Row: row, Column: columnNames[colTotal], Value: cell})
				} else {
					item.Total = &d
				}
			}
		}
		items = append(items, item)
	}

	return items, rowErrs
}

// FormatLineItemTable serializes line items back to a markdown table in
// canonical column order. Extraction followed by serialization is lossless
// for quantities, rates, and totals.
func FormatLineItemTable(items []LineItem) string {
	var b strings.Builder
	b.WriteString("| Description | Qty | Unit | Rate | Total |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, it := range items {
		total := ""
		if it.Total != nil {
			total = it.Total.String()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			it.Description, it.Quantity.String(), it.Unit, it.Rate.String(), total)
	}
	return b.String()
}
