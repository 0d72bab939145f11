package constituents

import "sort"

// RankingEntry is one line of a Top report.
type RankingEntry struct {
	Rank   int
	Ticker string
	Weight Percent
}

// Ranking lists positions by decreasing weight for one observation date.
type Ranking struct {
	Date    Date
	Entries []RankingEntry
}

// Top ranks the n largest positions on the given date. The zero date means
// the latest one; n <= 0 means all held positions.
func (t *Table) Top(on Date, n int) Ranking {
	if on.IsZero() {
		on = t.LatestDate()
	}
	r := Ranking{Date: on}
	for _, ticker := range t.tickers {
		if w := t.Weight(ticker, on); w > 0 {
			r.Entries = append(r.Entries, RankingEntry{Ticker: ticker, Weight: w})
		}
	}
	sort.SliceStable(r.Entries, func(i, j int) bool { return r.Entries[i].Weight > r.Entries[j].Weight })
	if n > 0 && n < len(r.Entries) {
		r.Entries = r.Entries[:n]
	}
	for i := range r.Entries {
		r.Entries[i].Rank = i + 1
	}
	return r
}
