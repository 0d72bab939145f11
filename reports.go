package constituents

import (
	"fmt"
	"sort"
)

// Summary describes one observation date of the table: how invested the
// fund was and how its weights were distributed.
type Summary struct {
	Date     Date
	Holdings int // tickers with a position on Date
	Tickers  int // rows in the table, held or not
	Dates    int // observation columns in the table

	Total   Percent // sum of weights, near 100 for a fully invested fund
	Average Percent
	Median  Percent
	Max     Percent
	Min     Percent // smallest non-zero weight

	Top       Ranking // ten largest positions
	TopWeight Percent // cumulative weight of the ten largest positions
}

// Summary computes the summary report for the given observation date. The
// zero date means the latest one.
func (t *Table) Summary(on Date) (*Summary, error) {
	if on.IsZero() {
		on = t.LatestDate()
	}
	if !t.HasDate(on) {
		return nil, fmt.Errorf("no observation for %s in table", on)
	}

	var weights []Percent
	for _, ticker := range t.tickers {
		if w := t.Weight(ticker, on); w > 0 {
			weights = append(weights, w)
		}
	}
	s := &Summary{
		Date:     on,
		Holdings: len(weights),
		Tickers:  len(t.tickers),
		Dates:    len(t.dates),
		Top:      t.Top(on, 10),
	}
	for _, e := range s.Top.Entries {
		s.TopWeight += e.Weight
	}
	if len(weights) == 0 {
		return s, nil
	}

	sort.Slice(weights, func(i, j int) bool { return weights[i] < weights[j] })
	for _, w := range weights {
		s.Total += w
	}
	s.Average = s.Total / Percent(len(weights))
	s.Min = weights[0]
	s.Max = weights[len(weights)-1]
	if n := len(weights); n%2 == 1 {
		s.Median = weights[n/2]
	} else {
		s.Median = (weights[n/2-1] + weights[n/2]) / 2
	}
	return s, nil
}
