package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/constituents"
	"github.com/google/subcommands"
)

type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "fetch the latest price of constituent tickers" }
func (*quoteCmd) Usage() string {
	return `cst quote <ticker>...

  Fetches the latest traded price of each ticker, in USD.
`
}

func (*quoteCmd) SetFlags(f *flag.FlagSet) {}

func (c *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: expected at least one ticker\n")
		return subcommands.ExitUsageError
	}

	status := subcommands.ExitSuccess
	for _, ticker := range f.Args() {
		price, err := constituents.Quote(ticker)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error quoting %s: %v\n", ticker, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("%s %s\n", ticker, price)
	}
	return status
}
