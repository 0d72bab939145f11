package constituents

import (
	"slices"
)

// Table is the in-memory constituents table: one row per ticker, one column
// per observation date.
//
// Internally it is a normalized series of (ticker, date) weight upserts; the
// wide rectangular form, with every cell populated and absent observations
// materialized as the 0 sentinel, exists only when the table is encoded.
// This keeps ticker uniqueness and merge idempotence as plain map and slice
// invariants instead of schema rewrites.
type Table struct {
	tickers []string // row order: decode order, new tickers appended
	dates   []Date   // column order: decode order, new dates appended
	rows    map[string]*History[Percent]
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{rows: make(map[string]*History[Percent])}
}

// Len returns the number of ticker rows.
func (t *Table) Len() int { return len(t.tickers) }

// Tickers returns the tickers in row order.
func (t *Table) Tickers() []string { return slices.Clone(t.tickers) }

// Dates returns the observation dates in column order.
func (t *Table) Dates() []Date { return slices.Clone(t.dates) }

// HasTicker reports whether the table has a row for ticker.
func (t *Table) HasTicker(ticker string) bool {
	_, ok := t.rows[ticker]
	return ok
}

// HasDate reports whether the table has a column for the given date.
func (t *Table) HasDate(on Date) bool { return slices.Contains(t.dates, on) }

// LatestDate returns the most recent observation date, or the zero Date for
// an empty table. Column order is preserved as written, so this scans rather
// than assuming chronological order.
func (t *Table) LatestDate() Date {
	var latest Date
	for _, on := range t.dates {
		if on.After(latest) {
			latest = on
		}
	}
	return latest
}

// Weight returns the weight observed for ticker on the given date. Absent
// observations materialize as the 0 sentinel: the ticker held no position on
// that date.
func (t *Table) Weight(ticker string, on Date) Percent {
	h, ok := t.rows[ticker]
	if !ok {
		return 0
	}
	w, ok := h.Get(on)
	if !ok {
		return 0
	}
	return w
}

// Set records a weight observation, creating the ticker row and the date
// column as needed. Setting the same (ticker, date) twice overwrites.
func (t *Table) Set(ticker string, on Date, w Percent) {
	t.addDate(on)
	t.addTicker(ticker)
	t.rows[ticker].Append(on, w)
}

// addTicker appends a new ticker row. A row can exist without observations:
// it then materializes as the 0 sentinel on every date column.
func (t *Table) addTicker(ticker string) {
	if _, ok := t.rows[ticker]; !ok {
		t.rows[ticker] = new(History[Percent])
		t.tickers = append(t.tickers, ticker)
	}
}

// addDate appends a new date column. Existing columns never move.
func (t *Table) addDate(on Date) {
	if !t.HasDate(on) {
		t.dates = append(t.dates, on)
	}
}
