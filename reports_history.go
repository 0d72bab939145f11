package constituents

import (
	"fmt"
	"sort"
)

// WeightObservation is a ticker's weight on one date, with the change since
// the previous observation.
type WeightObservation struct {
	Date   Date
	Weight Percent
	Change Percent
}

// WeightHistory traces one ticker's weight across every observation date of
// the table, chronologically.
type WeightHistory struct {
	Ticker       string
	Observations []WeightObservation

	First  Percent // weight on the earliest date
	Latest Percent // weight on the latest date
	Peak   Percent
}

// WeightHistory builds the weight history of one ticker. Dates where the
// ticker was not held show as 0, so entries and exits are visible.
func (t *Table) WeightHistory(ticker string) (*WeightHistory, error) {
	if !t.HasTicker(ticker) {
		return nil, fmt.Errorf("ticker %q not found in table", ticker)
	}
	dates := t.Dates()
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	h := &WeightHistory{Ticker: ticker}
	var prev Percent
	for i, on := range dates {
		w := t.Weight(ticker, on)
		obs := WeightObservation{Date: on, Weight: w}
		if i > 0 {
			obs.Change = w - prev
		}
		h.Observations = append(h.Observations, obs)
		if w > h.Peak {
			h.Peak = w
		}
		prev = w
	}
	if n := len(h.Observations); n > 0 {
		h.First = h.Observations[0].Weight
		h.Latest = h.Observations[n-1].Weight
	}
	return h, nil
}
