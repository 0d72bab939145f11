package renderer

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/etnz/constituents"
	md "github.com/nao1215/markdown"
)

func MergeMarkdown(results []constituents.MergeResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Merge Report")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"File", "Date", "Status", "Matched", "New"},
		Rows:   [][]string{},
	}
	var applied, duplicates, failed int
	for _, r := range results {
		row := []string{filepath.Base(r.File), "", r.Status.String(), "", ""}
		switch r.Status {
		case constituents.Applied:
			applied++
			row[1] = r.Date.String()
			row[3] = fmt.Sprintf("%d/%d (%s)", r.Matched, r.Total, r.MatchRate())
			row[4] = strconv.Itoa(len(r.Inserted))
		case constituents.SkippedDuplicate:
			duplicates++
			row[1] = r.Date.String()
		case constituents.Failed:
			failed++
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("%d applied, %d duplicates, %d failed.", applied, duplicates, failed))

	return doc.String()
}
