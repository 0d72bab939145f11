package constituents

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// EncodeTable writes the table in its wide CSV form: a "ticker" column
// followed by one column per observation date, every cell populated.
func EncodeTable(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)

	dates := t.Dates()
	header := make([]string, 0, len(dates)+1)
	header = append(header, "ticker")
	for _, on := range dates {
		header = append(header, on.String())
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	rec := make([]string, len(header))
	for _, ticker := range t.Tickers() {
		rec[0] = ticker
		for i, on := range dates {
			rec[i+1] = t.Weight(ticker, on).Cell()
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeTable reads a wide constituents table, preserving its ticker and
// column order.
//
// Empty cells are healed to the 0 sentinel, so a hand-edited table stays
// loadable; a non-numeric cell is an error.
func DecodeTable(r io.Reader) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read table csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty table")
	}
	header := records[0]
	if len(header) == 0 || !strings.EqualFold(header[0], "ticker") {
		return nil, &SchemaError{Column: "ticker"}
	}
	dates := make([]Date, 0, len(header)-1)
	for _, cell := range header[1:] {
		on, err := ParseDate(cell)
		if err != nil {
			return nil, fmt.Errorf("invalid date column %q: %w", cell, err)
		}
		dates = append(dates, on)
	}

	t := NewTable()
	for _, on := range dates {
		t.addDate(on)
	}
	for _, rec := range records[1:] {
		ticker := rec[0]
		if ticker == "" {
			continue
		}
		// A freshly created table has rows but no date column yet; register
		// the row even when the loop below has nothing to set.
		t.addTicker(ticker)
		for i, on := range dates {
			cell := rec[i+1]
			if cell == "" {
				t.Set(ticker, on, 0)
				continue
			}
			w, err := ParsePercent(cell)
			if err != nil {
				return nil, &ParseError{Ticker: ticker, Column: on.String(), Value: cell, Err: err}
			}
			t.Set(ticker, on, w)
		}
	}
	return t, nil
}

// LoadTable reads the table persisted at path. A missing file is reported as
// ErrMissingTable: merging never fabricates an initial table.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingTable, path)
		}
		return nil, err
	}
	defer f.Close()
	t, err := DecodeTable(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode table %s: %w", path, err)
	}
	return t, nil
}

// SaveTable persists the table at path, replacing any previous content in a
// single final write.
func SaveTable(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := EncodeTable(f, t); err != nil {
		return fmt.Errorf("cannot write table %s: %w", path, err)
	}
	return nil
}
