// Package renderer turns the library's report structs into markdown
// documents, ready for terminal rendering.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/constituents"
	md "github.com/nao1215/markdown"
)

func SummaryMarkdown(s *constituents.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Constituents Summary on %s", s.Date))
	doc.PlainText(fmt.Sprintf("%d holdings out of %d tracked tickers, over %d observation dates.",
		s.Holdings, s.Tickers, s.Dates))

	doc.H2("Weights")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Stat", "Weight"},
		Rows: [][]string{
			{"Total", s.Total.String()},
			{"Average", s.Average.String()},
			{"Median", s.Median.String()},
			{"Max", s.Max.String()},
			{"Min", s.Min.String()},
		},
	}
	doc.Table(table)

	doc.H2("Top 10 Positions")
	doc.PlainText(fmt.Sprintf("Cumulative weight %s.", s.TopWeight))
	doc.PlainText(rankingTable(s.Top))

	return doc.String()
}
