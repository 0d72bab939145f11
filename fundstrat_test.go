package constituents

import (
	"strings"
	"testing"
	"time"
)

const grnySample = `<!DOCTYPE html>
<html>
<body>
<h1>GRNY Granny Shots US Large Cap ETF</h1>
<p>Holdings as of August 20, 2025</p>
<table>
  <thead>
    <tr><th>Ticker</th><th>Name</th><th>Sector</th><th>Weight</th><th>Last Price</th><th>Market Price Ch%</th><th>Market Value</th></tr>
  </thead>
  <tbody>
    <tr><td>NVDA</td><td>NVIDIA Corp</td><td>Information Technology</td><td>5.67%</td><td>$177.99</td><td>+1.72%</td><td>$59,127,100</td></tr>
    <tr><td>AAPL</td><td>Apple Inc</td><td>Information Technology</td><td>5.23%</td><td>$230.56</td><td>-0.42%</td><td>$54,540,200</td></tr>
  </tbody>
</table>
<p>Holdings are subject to change.</p>
</body>
</html>
`

func TestParseFundstrat(t *testing.T) {
	s, err := parseFundstrat(strings.NewReader(grnySample))
	if err != nil {
		t.Fatalf("parseFundstrat() error = %v", err)
	}

	if s.Fund != "grny" {
		t.Errorf("Fund = %q, want grny", s.Fund)
	}
	if want := NewDate(2025, time.August, 20); s.Date != want {
		t.Errorf("Date = %v, want %v from the page banner", s.Date, want)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	h, ok := s.Get("NVDA")
	if !ok {
		t.Fatal("Get(NVDA) not found")
	}
	if !h.Weight.Equal(5.67) {
		t.Errorf("NVDA weight = %v, want 5.67", h.Weight)
	}
	if h.Sector != "Information Technology" {
		t.Errorf("NVDA sector = %q", h.Sector)
	}
	if h.Price.Cell() != "177.99" {
		t.Errorf("NVDA price = %q, want 177.99", h.Price.Cell())
	}
	if !h.PriceChange.Equal(1.72) {
		t.Errorf("NVDA price change = %v, want 1.72", h.PriceChange)
	}
	if h.MarketValue.Cell() != "59127100" {
		t.Errorf("NVDA market value = %q, want 59127100", h.MarketValue.Cell())
	}

	if h, _ := s.Get("AAPL"); !h.PriceChange.Equal(-0.42) {
		t.Errorf("AAPL price change = %v, want -0.42", h.PriceChange)
	}
}

func TestParseFundstratNoBanner(t *testing.T) {
	// without the banner the snapshot is dated today
	html := strings.Replace(grnySample, "Holdings as of August 20, 2025", "Our holdings", 1)
	s, err := parseFundstrat(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parseFundstrat() error = %v", err)
	}
	if s.Date != Today() {
		t.Errorf("Date = %v, want today", s.Date)
	}
}

func TestParseFundstratNoTable(t *testing.T) {
	if _, err := parseFundstrat(strings.NewReader("<html><body><p>maintenance</p></body></html>")); err == nil {
		t.Errorf("parseFundstrat() expected an error on a page without holdings table")
	}
}

func TestFundstratDemo(t *testing.T) {
	s := FundstratDemo()
	if s.Fund != "grny" || s.Len() == 0 {
		t.Fatalf("FundstratDemo() = %s with %d holdings", s.Fund, s.Len())
	}
	if s.Date.IsZero() {
		t.Errorf("FundstratDemo() has no date")
	}
	total := s.TotalWeight()
	if total <= 0 || total > 100 {
		t.Errorf("TotalWeight() = %v, want within (0, 100]", total)
	}
}
