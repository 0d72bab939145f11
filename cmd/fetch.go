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

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	source string
	demo   bool
	quiet  bool
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch a fund's current holdings into a snapshot file" }
func (*fetchCmd) Usage() string {
	return `cst fetch [-s <source>] [-demo]

  Downloads the current holdings of a fund and writes them as a dated
  snapshot file in the snapshot directory. Sources: arkk, arkw, arkg,
  arkq, arkf, arkx (ARK fund documents) and grny (Fundstrat page).
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.source, "s", "arkk", "Fund to fetch. See the command usage for supported sources.")
	f.BoolVar(&c.demo, "demo", false, "Use the built-in grny sample instead of fetching. Only for grny.")
	f.BoolVar(&c.quiet, "q", false, "Do not print the fetched holdings.")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var s *constituents.Snapshot
	var err error
	switch {
	case c.demo:
		if c.source != "grny" {
			fmt.Fprintf(os.Stderr, "Error: -demo is only available for the grny source\n")
			return subcommands.ExitUsageError
		}
		s = constituents.FundstratDemo()
	case c.source == "grny":
		s, err = constituents.FetchFundstrat()
	default:
		s, err = constituents.FetchArk(c.source)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching %s holdings: %v\n", c.source, err)
		return subcommands.ExitFailure
	}

	path, err := constituents.SaveSnapshot(*snapshotDir, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.quiet {
		printMarkdown(renderer.SnapshotMarkdown(s))
	}
	fmt.Printf("Successfully wrote %d holdings to %s\n", s.Len(), path)
	return subcommands.ExitSuccess
}
