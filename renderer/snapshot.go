package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/constituents"
	md "github.com/nao1215/markdown"
)

func SnapshotMarkdown(s *constituents.Snapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Holdings on %s", strings.ToUpper(s.Fund), s.Date))
	line := fmt.Sprintf("%d constituents, total weight %s", s.Len(), s.TotalWeight())
	if v := s.TotalMarketValue(); !v.IsZero() {
		line += fmt.Sprintf(", market value %s", v)
	}
	doc.PlainText(line + ".")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Ticker", "Sector", "Weight", "Market Value"},
		Rows:   [][]string{},
	}
	for h := range s.Holdings() {
		table.Rows = append(table.Rows, []string{
			h.Ticker,
			h.Sector,
			h.Weight.String(),
			h.MarketValue.Cell(),
		})
	}
	doc.Table(table)

	return doc.String()
}
