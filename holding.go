package constituents

import (
	"fmt"
	"iter"
	"sort"
)

// Holding is one constituent line of a fund snapshot.
type Holding struct {
	Ticker      string
	Weight      Percent
	Sector      string  // optional enrichment
	Price       Money   // optional enrichment
	MarketValue Money   // optional enrichment
	PriceChange Percent // optional enrichment
}

// Snapshot is one dated capture of a fund's holdings.
//
// Tickers are unique within a snapshot; the list order of the source is not
// semantically significant, but it is preserved for display.
type Snapshot struct {
	Fund     string // lower-case fund code, e.g. "arkk"
	Date     Date
	holdings []Holding
	index    map[string]int // ticker → position in holdings
}

// NewSnapshot creates an empty snapshot for the given fund and date.
func NewSnapshot(fund string, on Date) *Snapshot {
	return &Snapshot{
		Fund:  fund,
		Date:  on,
		index: make(map[string]int),
	}
}

// Add records h, replacing any previous holding with the same ticker: the
// last occurrence in a source wins.
func (s *Snapshot) Add(h Holding) {
	if i, ok := s.index[h.Ticker]; ok {
		s.holdings[i] = h
		return
	}
	s.index[h.Ticker] = len(s.holdings)
	s.holdings = append(s.holdings, h)
}

// Len returns the number of holdings in the snapshot.
func (s *Snapshot) Len() int { return len(s.holdings) }

// Get returns the holding for ticker, if the snapshot reports it.
func (s *Snapshot) Get(ticker string) (Holding, bool) {
	i, ok := s.index[ticker]
	if !ok {
		return Holding{}, false
	}
	return s.holdings[i], true
}

// Holdings returns an iterator over the holdings in source order.
func (s *Snapshot) Holdings() iter.Seq[Holding] {
	return func(yield func(Holding) bool) {
		for _, h := range s.holdings {
			if !yield(h) {
				return
			}
		}
	}
}

// Top returns the n largest holdings by weight, descending.
func (s *Snapshot) Top(n int) []Holding {
	top := make([]Holding, len(s.holdings))
	copy(top, s.holdings)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Weight > top[j].Weight })
	if n < len(top) {
		top = top[:n]
	}
	return top
}

// TotalWeight sums the snapshot's weights. A fully invested fund reports
// close to 100.
func (s *Snapshot) TotalWeight() Percent {
	var total Percent
	for _, h := range s.holdings {
		total += h.Weight
	}
	return total
}

// TotalMarketValue sums the snapshot's market values, when the source
// publishes them.
func (s *Snapshot) TotalMarketValue() Money {
	var total Money
	for _, h := range s.holdings {
		total = total.Add(h.MarketValue)
	}
	return total
}

// Filename returns the canonical file name for this snapshot,
// "<fund>_holdings_<YYYYMMDD>.csv".
func (s *Snapshot) Filename() string {
	return fmt.Sprintf("%s_holdings_%s.csv", s.Fund, s.Date)
}
