package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/constituents"
	"github.com/etnz/constituents/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a constituents summary for one date" }
func (*summaryCmd) Usage() string {
	return `cst summary [-d <date>]

  Displays the weight distribution and top positions of the fund on one
  observation date. Defaults to the latest date in the table.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the summary. Defaults to the latest observation.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var on constituents.Date
	if c.date != "" {
		var err error
		on, err = constituents.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	t, err := LoadTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading table: %v\n", err)
		return subcommands.ExitFailure
	}

	s, err := t.Summary(on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing summary: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(s))
	return subcommands.ExitSuccess
}
