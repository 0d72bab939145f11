package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/constituents"
	md "github.com/nao1215/markdown"
)

func HistoryMarkdown(h *constituents.WeightHistory) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Weight History for %s", h.Ticker))
	doc.PlainText(fmt.Sprintf("First %s, latest %s, peak %s.",
		h.First, h.Latest, h.Peak))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Weight", "Change"},
		Rows:   [][]string{},
	}
	for _, obs := range h.Observations {
		table.Rows = append(table.Rows, []string{
			obs.Date.String(),
			obs.Weight.String(),
			obs.Change.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}
