// ABOUTME: Header-driven CSV readers for the reference tables
// ABOUTME: Columns are looked up by name so extra columns and reordering are tolerated

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
)

// table is a parsed CSV file with a name -> column index header.
type table struct {
	header map[string]int
	rows   [][]string
}

func readTable(fsys fs.FS, name string) (*table, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseTable(f)
}

func parseTable(r io.Reader) (*table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(records) == 0 {
		return &table{header: map[string]int{}}, nil
	}

	t := &table{header: make(map[string]int, len(records[0]))}
	for i, col := range records[0] {
		t.header[strings.TrimPrefix(strings.TrimSpace(col), "\ufeff")] = i
	}
	t.rows = records[1:]
	return t, nil
}

// columns resolves names to indexes, failing on the first missing one.
func (t *table) columns(names ...string) ([]int, error) {
	idx := make([]int, len(names))
	for i, n := range names {
		c, ok := t.header[n]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, n)
		}
		idx[i] = c
	}
	return idx, nil
}

// field returns row[i] or "" when the row is short.
func field(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func readIntents(fsys fs.FS, name string) ([]IntentExample, error) {
	t, err := readTable(fsys, name)
	if err != nil {
		return nil, err
	}
	cols, err := t.columns("text", "intent")
	if err != nil {
		return nil, err
	}
	out := make([]IntentExample, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, IntentExample{Text: field(row, cols[0]), Intent: field(row, cols[1])})
	}
	return out, nil
}

func readFAQ(fsys fs.FS, name string) ([]FAQEntry, error) {
	t, err := readTable(fsys, name)
	if err != nil {
		return nil, err
	}
	cols, err := t.columns("Question", "Answer")
	if err != nil {
		return nil, err
	}
	out := make([]FAQEntry, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, FAQEntry{Question: field(row, cols[0]), Answer: field(row, cols[1])})
	}
	return out, nil
}

func readGroceries(fsys fs.FS, name string) ([]GroceryRow, error) {
	t, err := readTable(fsys, name)
	if err != nil {
		return nil, err
	}
	cols, err := t.columns("Member_number", "itemDescription", "Price")
	if err != nil {
		return nil, err
	}
	dateCol, hasDate := t.header["Date"]

	out := make([]GroceryRow, 0, len(t.rows))
	for i, row := range t.rows {
		price, err := strconv.ParseFloat(field(row, cols[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing price: %w", i+2, err)
		}
		r := GroceryRow{
			MemberID: field(row, cols[0]),
			Item:     field(row, cols[1]),
			Price:    price,
		}
		if hasDate {
			r.Date = field(row, dateCol)
		}
		out = append(out, r)
	}
	return out, nil
}
