package constituents

import (
	"encoding/json"
	"io"
)

// ExportJSON writes the table as a JSON array of ticker records, one
// property per observation date, in column order.
func ExportJSON(w io.Writer, t *Table) error {
	dates := t.Dates()
	var rows []json.Marshaler
	for _, ticker := range t.Tickers() {
		row := &jsonObjectWriter{}
		row.Append("ticker", ticker)
		for _, on := range dates {
			row.Append(on.String(), float64(t.Weight(ticker, on)))
		}
		rows = append(rows, row)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// ExportSnapshotJSON writes a snapshot as a JSON document: the fund, the
// observation date, and the holdings with their optional enrichments
// omitted when the source did not publish them.
func ExportSnapshotJSON(w io.Writer, s *Snapshot) error {
	doc := &jsonObjectWriter{}
	doc.Append("fund", s.Fund)
	doc.Append("date", s.Date.String())
	doc.Append("holdings", s.Len())
	doc.Append("total_weight", float64(s.TotalWeight()))

	var rows []json.Marshaler
	for h := range s.Holdings() {
		row := &jsonObjectWriter{}
		row.Append("ticker", h.Ticker)
		row.Append("weight", float64(h.Weight))
		row.Optional("sector", h.Sector)
		row.Optional("price", h.Price.Cell())
		row.Optional("market_value", h.MarketValue.Cell())
		rows = append(rows, row)
	}
	doc.Append("constituents", rows)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
