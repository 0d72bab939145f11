package renderer

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/constituents"
	md "github.com/nao1215/markdown"
)

func SectorsMarkdown(s *constituents.Snapshot, lines []constituents.SectorLine) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Sector Breakdown on %s", strings.ToUpper(s.Fund), s.Date))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Sector", "Holdings", "Weight", "Share", "Market Value"},
		Rows:   [][]string{},
	}
	for _, line := range lines {
		table.Rows = append(table.Rows, []string{
			line.Sector,
			strconv.Itoa(line.Holdings),
			line.Weight.String(),
			line.Share.String(),
			line.MarketValue.Cell(),
		})
	}
	doc.Table(table)

	return doc.String()
}
