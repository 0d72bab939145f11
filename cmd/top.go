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

// topCmd holds the flags for the 'top' subcommand.
type topCmd struct {
	date string
	n    int
}

func (*topCmd) Name() string     { return "top" }
func (*topCmd) Synopsis() string { return "rank the fund's largest positions" }
func (*topCmd) Usage() string {
	return `cst top [-d <date>] [-n <count>]

  Ranks the fund's positions by decreasing weight on one observation
  date. Defaults to the ten largest on the latest date.
`
}

func (c *topCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the ranking. Defaults to the latest observation.")
	f.IntVar(&c.n, "n", 10, "Number of positions to rank. 0 means all.")
}

func (c *topCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.TopMarkdown(t.Top(on, c.n)))
	return subcommands.ExitSuccess
}
