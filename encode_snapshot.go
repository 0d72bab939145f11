package constituents

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// CanonicalSchema is the column layout of snapshot files as this tool writes
// them. ARK's raw fund documents resolve against it too, since they publish
// the same "ticker" and "weight (%)" columns.
var CanonicalSchema = Schema{
	Date:        "date",
	Ticker:      "ticker",
	Sector:      "sector",
	Weight:      "weight (%)",
	Price:       "price",
	MarketValue: "market value",
}

// snapshotDateLayout is how vendors stamp dates inside CSV cells.
const snapshotDateLayout = "1/2/2006"

// DecodeSnapshot reads a snapshot for fund from a CSV stream, resolving
// columns against schema.
//
// Vendor files end with disclaimer footers and blank lines; any record with
// an empty ticker cell is skipped. The observation date is taken from the
// first parseable cell of the declared date column, when there is one. A
// holding whose weight does not parse fails the whole snapshot: a partially
// read capture would silently understate the fund.
func DecodeSnapshot(r io.Reader, fund string, schema Schema) (*Snapshot, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // footers are not rectangular
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read snapshot csv: %w", err)
	}
	return decodeRecords(records, fund, schema)
}

// decodeRecords builds a snapshot from raw CSV records, header first.
func decodeRecords(records [][]string, fund string, schema Schema) (*Snapshot, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty snapshot")
	}
	idx, err := schema.resolve(records[0])
	if err != nil {
		return nil, err
	}

	cell := func(rec []string, i int) string {
		if i < 0 || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	s := NewSnapshot(fund, Date{})
	for _, rec := range records[1:] {
		ticker := cell(rec, idx.ticker)
		if ticker == "" {
			continue
		}
		if s.Date.IsZero() {
			if on, err := ParseDate(cell(rec, idx.date)); err == nil {
				s.Date = on
			}
		}

		h := Holding{Ticker: ticker, Sector: cell(rec, idx.sector)}
		raw := cell(rec, idx.weight)
		w, err := ParsePercent(raw)
		if err != nil {
			return nil, &ParseError{Ticker: ticker, Column: "weight", Value: raw, Err: err}
		}
		if w < 0 {
			return nil, &ParseError{Ticker: ticker, Column: "weight", Value: raw, Err: fmt.Errorf("negative weight")}
		}
		h.Weight = w

		// Enrichments are best effort: a vendor leaving a price cell blank
		// does not invalidate the weight observation.
		if p, err := ParseMoney(cell(rec, idx.price), "USD"); err == nil {
			h.Price = p
		}
		if v, err := ParseMoney(cell(rec, idx.marketValue), "USD"); err == nil {
			h.MarketValue = v
		}
		if c, err := ParsePercent(cell(rec, idx.priceChange)); err == nil {
			h.PriceChange = c
		}
		s.Add(h)
	}
	return s, nil
}

// DecodeSnapshotFile reads a canonical snapshot file from disk.
//
// The date declared inside the file is authoritative; when the content
// carries none, the date embedded in the file name is used instead. A file
// with neither fails with a DateFormatError.
func DecodeSnapshotFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := DecodeSnapshot(f, fundFromFilename(path), CanonicalSchema)
	if err != nil {
		return nil, err
	}
	if s.Date.IsZero() {
		on, err := ParseSnapshotFilename(path)
		if err != nil {
			return nil, err
		}
		s.Date = on
	}
	return s, nil
}

// fundFromFilename extracts the fund code from a canonical snapshot file
// name, "" when the name is not canonical.
func fundFromFilename(path string) string {
	base := filepath.Base(path)
	fund, _, ok := strings.Cut(base, "_holdings_")
	if !ok {
		return ""
	}
	return strings.ToLower(fund)
}

// EncodeSnapshot writes s in the canonical snapshot format.
func EncodeSnapshot(w io.Writer, s *Snapshot) error {
	cw := csv.NewWriter(w)
	header := []string{
		CanonicalSchema.Date,
		CanonicalSchema.Ticker,
		CanonicalSchema.Sector,
		CanonicalSchema.Weight,
		CanonicalSchema.Price,
		CanonicalSchema.MarketValue,
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	on := s.Date.Format(snapshotDateLayout)
	for h := range s.Holdings() {
		rec := []string{on, h.Ticker, h.Sector, h.Weight.Cell(), h.Price.Cell(), h.MarketValue.Cell()}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveSnapshot writes s to its canonical file name under dir and returns the
// full path.
func SaveSnapshot(dir string, s *Snapshot) (string, error) {
	path := filepath.Join(dir, s.Filename())
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := EncodeSnapshot(f, s); err != nil {
		return "", fmt.Errorf("cannot write snapshot %s: %w", path, err)
	}
	return path, nil
}
