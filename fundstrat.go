package constituents

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Fundstrat publishes GRNY holdings as an HTML table, refreshed daily.
const fundstratURL = "https://grannyshots.com/holdings/"

// FundstratSchema maps the column headers of the grannyshots holdings table.
var FundstratSchema = Schema{
	Ticker:      "Ticker",
	Sector:      "Sector",
	Weight:      "Weight",
	Price:       "Last Price",
	MarketValue: "Market Value",
	PriceChange: "Market Price Ch%",
}

// FetchFundstrat downloads the GRNY holdings page and scrapes it into a
// snapshot.
//
// The page carries no per-row date; the "Holdings as of <Month> <Day>,
// <Year>" banner is authoritative, and today's date is the fallback when the
// banner is missing.
func FetchFundstrat() (*Snapshot, error) {
	body, err := fetch(daily(), fundstratURL)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch grny holdings: %w", err)
	}
	defer body.Close()
	return parseFundstrat(body)
}

// parseFundstrat scrapes the holdings table out of the page HTML.
func parseFundstrat(r io.Reader) (*Snapshot, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("cannot parse grny holdings page: %w", err)
	}

	records := scrapeTable(doc)
	if len(records) == 0 {
		return nil, fmt.Errorf("no holdings table found on grny page")
	}
	s, err := decodeRecords(records, "grny", FundstratSchema)
	if err != nil {
		return nil, err
	}

	if on, err := ParseHoldingsAsOf(doc.Text()); err == nil {
		s.Date = on
	} else {
		s.Date = Today()
	}
	return s, nil
}

// scrapeTable extracts the first table whose header row declares a Ticker
// column, as CSV-shaped records, header first.
func scrapeTable(doc *goquery.Document) [][]string {
	var records [][]string
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		var header []string
		table.Find("thead tr").First().Find("th").Each(func(_ int, th *goquery.Selection) {
			header = append(header, strings.TrimSpace(th.Text()))
		})
		if len(header) == 0 {
			// some renderings put the header in the first body row
			table.Find("tr").First().Find("th, td").Each(func(_ int, cell *goquery.Selection) {
				header = append(header, strings.TrimSpace(cell.Text()))
			})
		}
		found := false
		for _, h := range header {
			if strings.EqualFold(h, "Ticker") {
				found = true
			}
		}
		if !found {
			return true // keep looking
		}

		records = append(records, header)
		table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
			var rec []string
			tr.Find("td").Each(func(_ int, td *goquery.Selection) {
				rec = append(rec, strings.TrimSpace(td.Text()))
			})
			// some renderings echo the header as a body row
			if len(rec) > 0 && !strings.EqualFold(rec[0], header[0]) {
				records = append(records, rec)
			}
		})
		return false
	})
	return records
}

// FundstratDemo returns a fixed GRNY snapshot for offline runs: same shape
// as a live scrape, stable content.
func FundstratDemo() *Snapshot {
	s := NewSnapshot("grny", NewDate(2025, 8, 20))
	demo := []Holding{
		{Ticker: "NVDA", Weight: 5.67, Sector: "Information Technology"},
		{Ticker: "AAPL", Weight: 5.23, Sector: "Information Technology"},
		{Ticker: "MSFT", Weight: 4.98, Sector: "Information Technology"},
		{Ticker: "GOOGL", Weight: 4.45, Sector: "Communication Services"},
		{Ticker: "AMZN", Weight: 4.12, Sector: "Consumer Discretionary"},
		{Ticker: "META", Weight: 3.87, Sector: "Communication Services"},
		{Ticker: "TSLA", Weight: 3.54, Sector: "Consumer Discretionary"},
		{Ticker: "AVGO", Weight: 3.21, Sector: "Information Technology"},
		{Ticker: "LLY", Weight: 2.98, Sector: "Health Care"},
		{Ticker: "JPM", Weight: 2.76, Sector: "Financials"},
	}
	for _, h := range demo {
		s.Add(h)
	}
	return s
}
