package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/constituents/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "trace a ticker's weight over time" }
func (*historyCmd) Usage() string {
	return `cst history <ticker>

  Shows the weight of one ticker on every observation date of the table,
  with the change between dates. Dates where the fund held no position
  show as 0.
`
}

func (*historyCmd) SetFlags(f *flag.FlagSet) {}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one ticker\n")
		return subcommands.ExitUsageError
	}

	t, err := LoadTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading table: %v\n", err)
		return subcommands.ExitFailure
	}

	h, err := t.WeightHistory(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.HistoryMarkdown(h))
	return subcommands.ExitSuccess
}
