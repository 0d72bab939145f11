package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/constituents"
	md "github.com/nao1215/markdown"
)

func TopMarkdown(r constituents.Ranking) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Top %d Positions on %s", len(r.Entries), r.Date))
	doc.PlainText(rankingTable(r))

	return doc.String()
}

// rankingTable renders a ranking as a bare markdown table, shared between
// the top and summary reports.
func rankingTable(r constituents.Ranking) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Rank", "Ticker", "Weight"},
		Rows:   [][]string{},
	}
	for _, e := range r.Entries {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(e.Rank),
			e.Ticker,
			e.Weight.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
