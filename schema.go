package constituents

import (
	"fmt"
	"strings"
)

// Schema declares where a source publishes each snapshot field, by column
// name. Header matching is exact but case-insensitive: vendors drift on
// capitalization, not on wording, and a declared mapping keeps failures
// explicit instead of hiding them behind substring heuristics.
//
// Ticker and Weight are required; everything else is optional enrichment.
type Schema struct {
	Ticker      string
	Weight      string
	Date        string // column carrying the observation date, if the source declares one
	Sector      string
	Price       string
	MarketValue string
	PriceChange string
}

// Validate checks that the schema declares the columns the merge contract
// requires.
func (s Schema) Validate() error {
	if s.Ticker == "" {
		return fmt.Errorf("schema: ticker column is not declared")
	}
	if s.Weight == "" {
		return fmt.Errorf("schema: weight column is not declared")
	}
	return nil
}

// columnIndex locates the declared columns in a concrete header row.
// A negative index means the column is not present.
type columnIndex struct {
	ticker, weight, date, sector, price, marketValue, priceChange int
}

// resolve maps the declared columns onto header. Missing required columns
// fail with a SchemaError; missing optional columns resolve to -1.
func (s Schema) resolve(header []string) (columnIndex, error) {
	find := func(name string) int {
		if name == "" {
			return -1
		}
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
		return -1
	}

	idx := columnIndex{
		ticker:      find(s.Ticker),
		weight:      find(s.Weight),
		date:        find(s.Date),
		sector:      find(s.Sector),
		price:       find(s.Price),
		marketValue: find(s.MarketValue),
		priceChange: find(s.PriceChange),
	}
	if idx.ticker < 0 {
		return idx, &SchemaError{Column: s.Ticker}
	}
	if idx.weight < 0 {
		return idx, &SchemaError{Column: s.Weight}
	}
	return idx, nil
}
